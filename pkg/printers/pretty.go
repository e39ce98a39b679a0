// Package printers renders device data for the plain CLI commands.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/amarlabs/amar/pkg/history"
	"github.com/amarlabs/amar/pkg/pillbox"
	"github.com/amarlabs/amar/pkg/profile"
	"github.com/amarlabs/amar/pkg/schedule"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Schedule lists entries in time-of-day order.
func (pp *PrettyPrint) Schedule(entries ...schedule.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	sorted := make([]schedule.Entry, len(entries))
	copy(sorted, entries)
	schedule.SortByTime(sorted)

	table := uitable.New()
	if pp.ShowID {
		table.AddRow("ID", "TIME", "MEDICATION", "COMPARTMENT")
		for _, e := range sorted {
			table.AddRow(e.ID, schedule.FormatTime(e.Time), e.Name, e.Compartment)
		}
	} else {
		table.AddRow("TIME", "MEDICATION", "COMPARTMENT")
		for _, e := range sorted {
			table.AddRow(schedule.FormatTime(e.Time), e.Name, e.Compartment)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Profile prints the patient and guardian details.
func (pp *PrettyPrint) Profile(p profile.Profile) {
	table := uitable.New()
	table.AddRow("Patient:", p.PatientName)
	table.AddRow("Guardian:", p.GuardianName)
	table.AddRow("Phone:", p.GuardianPhone)
	table.AddRow("Avatar:", p.AvatarRef())
	fmt.Println(table)
	fmt.Println("")
}

// Pillbox prints each compartment colored by its fill classification and a
// refill warning when any compartment is low or empty.
func (pp *PrettyPrint) Pillbox(box []pillbox.Compartment) {
	ok := color.New(color.FgGreen)
	low := color.New(color.FgYellow)
	empty := color.New(color.FgRed, color.Bold)

	for _, c := range box {
		line := fmt.Sprintf("Day %d  %d/%d %s", c.ID, c.Pills, c.Total, c.Level())
		switch c.Level() {
		case pillbox.Empty:
			_, _ = empty.Println(line)
		case pillbox.Low:
			_, _ = low.Println(line)
		default:
			_, _ = ok.Println(line)
		}
	}
	if pillbox.NeedsRefill(box) {
		w := color.New(color.FgYellow, color.Bold)
		_, _ = w.Println("\nSome compartments are running low.")
	}
	fmt.Println("")
}

// History prints dispense records oldest first.
func (pp *PrettyPrint) History(records ...history.DispenseRecord) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	for _, r := range records {
		c := ok
		switch r.Status {
		case history.StatusWarning:
			c = warn
		case history.StatusError:
			c = fail
		}
		_, _ = c.Printf("%s  ", r.Status)
		fmt.Printf("%s  %s\n", r.Message, r.Time)
	}
	fmt.Println("")
}
