package domain

import "time"

// WeekdaySet is a 7-bit mask of the weekdays an item is active on.
// Bit order is Monday=0x01 .. Sunday=0x40 and is part of the API contract.
type WeekdaySet int

const (
	Monday    WeekdaySet = 1 << iota // 0x01
	Tuesday                          // 0x02
	Wednesday                        // 0x04
	Thursday                         // 0x08
	Friday                           // 0x10
	Saturday                         // 0x20
	Sunday                           // 0x40

	EveryDay WeekdaySet = 0x7F
	Weekdays WeekdaySet = Monday | Tuesday | Wednesday | Thursday | Friday
)

// Contains reports whether d's weekday belongs to the set.
// Depends only on the weekday, never on the absolute date.
func (s WeekdaySet) Contains(d time.Time) bool {
	// time.Weekday has Sunday=0; shift so Monday=0 to match the bit order.
	bit := WeekdaySet(1) << ((int(d.Weekday()) + 6) % 7)
	return s&bit != 0
}

// Valid reports whether the mask is within the 7-bit range.
func (s WeekdaySet) Valid() bool {
	return s >= 0 && s <= EveryDay
}
