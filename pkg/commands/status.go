package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amarlabs/amar/pkg/printers"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pillbox levels and the dispense history",
		Example: `
amar status
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{}
			pp.Title("Pill Compartments")
			pp.Pillbox(svc.State.Pillbox())
			records := svc.State.DispenseLog()
			pp.TitleWithCount("Dispense Log", len(records))
			pp.History(records...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
