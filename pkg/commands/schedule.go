package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amarlabs/amar/pkg/commands/options"
	"github.com/amarlabs/amar/pkg/printers"
	"github.com/amarlabs/amar/pkg/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the medication schedule",
		Example: `
amar schedule list
amar schedule add --name Metformin --time 08:00 --compartment 1
amar schedule remove --id 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleList(cmd)
	addScheduleAdd(cmd)
	addScheduleRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the schedule in time-of-day order",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			entries := svc.Schedule()
			pp := printers.PrettyPrint{ShowID: io.ShowID}
			pp.TitleWithCount("Medication Schedule", len(entries))
			pp.Schedule(entries...)
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a schedule entry",
		Example: `
amar schedule add --name Metformin --time 08:00 --compartment 1
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if so.Name == "" && len(args) > 0 {
				so.Name = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			e, err := svc.SaveEntry(schedule.Entry{
				Name:        so.Name,
				Time:        so.Time,
				Compartment: so.Compartment,
			})
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{ShowID: true}
			pp.Title("Added")
			pp.Schedule(e)
			return nil
		},
	}

	options.AddScheduleArgs(cmd, so)
	topLevel.AddCommand(cmd)
}

func addScheduleRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "remove a schedule entry by id",
		Example: `
amar schedule remove --id 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == 0 {
				return errors.New("an entry id is required")
			}
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			if !svc.DeleteEntry(io.ID) {
				return oo.HandleError(errors.New("no schedule entry with that id"))
			}
			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Medication Schedule", len(svc.Schedule()))
			pp.Schedule(svc.Schedule()...)
			return nil
		},
	}

	options.AddIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
