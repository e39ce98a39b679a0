// Package adherence holds the weekly dose-adherence series shown on the
// dashboard chart.
package adherence

// Days labels the series positions.
var Days = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Series is one adherence percentage per weekday. Read-only in the UI.
type Series [7]int

// Average returns the mean adherence across the week.
func (s Series) Average() int {
	sum := 0
	for _, v := range s {
		sum += v
	}
	return sum / len(s)
}
