package domain

import "time"

// Booking represents a room booking at a guest house.
// GuestHouseName is a reference by name; referential integrity is not
// enforced, a booking may outlive the guest house it points to.
type Booking struct {
	ID int64

	GuestName    string
	GuestContact string

	// Employee details for official stays
	EmployeeID    string
	Department    string
	Designation   string
	CostCenter    string
	EmployeeLevel string

	Purpose      string
	ModeOfTravel string
	ComingFrom   string
	GoingBack    string

	// Stay dates, date-only (no time component)
	CheckIn  time.Time
	CheckOut time.Time

	GuestHouseName string
	RoomNumber     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the booking's stay conflicts with the requested
// date range. Boundary dates are inclusive: a checkout and a check-in on the
// same date count as a conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckOut.Before(checkIn) && !b.CheckIn.After(checkOut)
}

// Nights returns the number of nights between check-in and check-out.
// A same-day stay counts as zero nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
