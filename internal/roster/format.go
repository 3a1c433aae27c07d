package roster

import "fmt"

// FormatMinutes renders minutes as "H:MM" with an unpadded hour.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// FormatOptional is FormatMinutes for a value that may be absent.
func FormatOptional(minutes *int) string {
	if minutes == nil {
		return "0:00"
	}
	return FormatMinutes(*minutes)
}
