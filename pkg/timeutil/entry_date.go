package timeutil

import "time"

// CutoffHour is the last local hour that still belongs to the previous day.
// Sitting up all night writing counts as yesterday's entry.
const CutoffHour = 14

// EntryDate returns noon of the day an entry written at now belongs to.
// Noon is used because some zones skip local midnight on DST transitions.
func EntryDate(now time.Time) time.Time {
	y, m, d := now.Date()
	if now.Hour() <= CutoffHour {
		d--
	}
	return time.Date(y, m, d, 12, 0, 0, 0, now.Location())
}
