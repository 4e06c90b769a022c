package display

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration in compact clock form ("1h02m",
// "2m05s", "45s"). Sub-second values collapse to "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh%02dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatETA renders the time remaining as an ETA label (e.g. "ETA 2m05s").
func FormatETA(remaining time.Duration) string {
	return "ETA " + FormatDuration(remaining)
}
