package format

import "fmt"

// FormatDuration renders elapsed seconds as H:MM:SS, e.g. 3723 -> "1:02:03".
// Hours are not zero-padded and do not wrap past 24.
func FormatDuration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h := seconds / 3600
	m := seconds % 3600 / 60
	s := seconds % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}
