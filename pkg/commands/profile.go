package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amarlabs/amar/pkg/commands/options"
	"github.com/amarlabs/amar/pkg/printers"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the patient profile",
		Example: `
amar profile
amar profile set --guardian "Jane Doe" --phone 555-0100
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{}
			pp.Title("Profile")
			pp.Profile(svc.State.Profile())
			return nil
		},
	}

	addProfileShow(cmd)
	addProfileSet(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the patient profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{}
			pp.Title("Profile")
			pp.Profile(svc.State.Profile())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "set",
		Short: "update the guardian contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			if err := svc.UpdateGuardian(po.Guardian, po.Phone); err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Title("Profile")
			pp.Profile(svc.State.Profile())
			return nil
		},
	}

	options.AddProfileArgs(cmd, po)
	topLevel.AddCommand(cmd)
}
