package holiday

import "time"

// ThreadMap holds the reminder thread IDs per time-slot key, one set for
// weekdays and one for weekends/holidays. Keys are the slot start hours.
type ThreadMap struct {
	Weekday map[string]string
	Holiday map[string]string
}

// SlotKey maps an hour of day onto its reminder slot key. The slots start
// at 0/3/6/9/12/15/18/22; the 18 slot runs through 21.
func SlotKey(hour int) string {
	switch {
	case hour >= 22 && hour < 24:
		return "22"
	case hour >= 18:
		return "18"
	case hour >= 15:
		return "15"
	case hour >= 12:
		return "12"
	case hour >= 9:
		return "9"
	case hour >= 6:
		return "6"
	case hour >= 3:
		return "3"
	case hour >= 0:
		return "0"
	default:
		return "18"
	}
}

// ResolveThread picks the reminder thread for the given local time.
func (m ThreadMap) ResolveThread(t time.Time, isHoliday bool) string {
	key := SlotKey(t.Hour())
	if isHoliday {
		return m.Holiday[key]
	}
	return m.Weekday[key]
}
