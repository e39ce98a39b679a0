package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amarlabs/amar/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the dashboard user interface",
		Example: `
amar ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			svc.StartDispenser()
			defer svc.Dispenser.Stop()
			return tui.Run(svc, svc.Log)
		},
	}

	topLevel.AddCommand(cmd)
}
