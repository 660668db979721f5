package countdown

import "time"

// Dhaka is the fixed +06:00 zone the festival times are published in
var Dhaka = time.FixedZone("BDT", 6*60*60)

// DefaultSchedule is the festival calendar shown on the home section
func DefaultSchedule() []Event {
	at := func(year int, month time.Month, day, hour, min int) time.Time {
		return time.Date(year, month, day, hour, min, 0, 0, Dhaka)
	}
	return []Event{
		{Name: "মহালয়া", Start: at(2025, time.September, 21, 6, 0)},
		{Name: "ষষ্ঠী", Start: at(2025, time.September, 28, 18, 0)},
		{Name: "সপ্তমী", Start: at(2025, time.September, 29, 7, 30)},
		{Name: "অষ্টমী", Start: at(2025, time.September, 30, 10, 0)},
		{Name: "নবমী", Start: at(2025, time.October, 1, 10, 0)},
		{Name: "বিজয়া দশমী", Start: at(2025, time.October, 2, 15, 30)},
	}
}
