package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{
		CheckIn:  date("2025-10-10"),
		CheckOut: date("2025-10-15"),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"range inside stay", "2025-10-11", "2025-10-13", true},
		{"stay inside range", "2025-10-01", "2025-10-31", true},
		{"partial overlap at start", "2025-10-08", "2025-10-10", true},
		{"partial overlap at end", "2025-10-15", "2025-10-20", true},
		{"checkout day equals checkin day", "2025-10-15", "2025-10-15", true},
		{"range before stay", "2025-10-01", "2025-10-09", false},
		{"range after stay", "2025-10-16", "2025-10-20", false},
		{"single day inside stay", "2025-10-12", "2025-10-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.Overlaps(date(tt.checkIn), date(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_Nights(t *testing.T) {
	b := &Booking{CheckIn: date("2025-10-10"), CheckOut: date("2025-10-15")}
	assert.Equal(t, 5, b.Nights())

	sameDay := &Booking{CheckIn: date("2025-10-10"), CheckOut: date("2025-10-10")}
	assert.Equal(t, 0, sameDay.Nights())
}
