package model

import "time"

// Weekday indexes days Monday=0 through Sunday=6. This differs from
// time.Weekday, which starts at Sunday; WeekdayOf converts.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "invalid weekday"
	}
	return weekdayNames[d]
}

// WeekdayOf maps a timestamp to the Monday-based index.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
