package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amarlabs/amar/pkg/commands/options"
	"github.com/amarlabs/amar/pkg/printers"
)

func addDispense(topLevel *cobra.Command) {
	do := &options.DispenseOptions{}

	cmd := &cobra.Command{
		Use:   "dispense",
		Short: "Dispense immediately from a compartment",
		Example: `
amar dispense --compartment 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			if err := svc.Dispense(do.Compartment); err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Title("Pill Compartments")
			pp.Pillbox(svc.State.Pillbox())
			return nil
		},
	}

	options.AddDispenseArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
