// Package history defines the immutable monitoring records: dispense events
// and captured verification images.
package history

import "time"

// Status classifies a dispense record.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// DispenseRecord is one dispense event or missed-dose alert. Append-only.
type DispenseRecord struct {
	Time    string `json:"time"` // display label, e.g. "08:01 AM" or "Yesterday"
	Message string `json:"msg"`
	Status  Status `json:"status"`
}

// ImageRecord is one captured verification image. Append-only.
type ImageRecord struct {
	Time string `json:"time"`
	URL  string `json:"url"`
}

// TimeLabel formats a timestamp the way dispense records display it.
func TimeLabel(t time.Time) string {
	return t.Format("03:04 PM")
}
