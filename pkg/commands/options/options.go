// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures the schedule entry flags.
type ScheduleOptions struct {
	Name        string
	Time        string
	Compartment int
}

func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Medication name.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Time of day in 24h form, example: --time="08:00".`)
	cmd.Flags().IntVar(&o.Compartment, "compartment", 0,
		"Pillbox compartment number.")
}

// ProfileOptions captures the guardian contact flags.
type ProfileOptions struct {
	Guardian string
	Phone    string
}

func AddProfileArgs(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Guardian, "guardian", "",
		"Guardian name.")
	cmd.Flags().StringVar(&o.Phone, "phone", "",
		"Guardian phone number.")
}

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int64
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each schedule entry.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().Int64Var(&o.ID, "id", 0,
		"Specify the id of a schedule entry.")
}

// DispenseOptions
type DispenseOptions struct {
	Compartment int
}

func AddDispenseArgs(cmd *cobra.Command, o *DispenseOptions) {
	cmd.Flags().IntVarP(&o.Compartment, "compartment", "c", 0,
		"Compartment to dispense from.")
}
