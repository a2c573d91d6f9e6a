package reservation

import (
	"errors"
	"strings"
	"time"
)

var ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")

const day = 24 * time.Hour

// StayPeriod is the half-open interval [checkIn, checkOut).
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkIn.Before(checkOut) {
		return StayPeriod{}, ErrCheckOutNotAfterCheckIn
	}
	return StayPeriod{checkIn: checkIn.UTC(), checkOut: checkOut.UTC()}, nil
}

func (p StayPeriod) CheckIn() time.Time {
	return p.checkIn
}

func (p StayPeriod) CheckOut() time.Time {
	return p.checkOut
}

// Nights is the length of the stay in days, rounded up.
func (p StayPeriod) Nights() int64 {
	d := p.checkOut.Sub(p.checkIn)
	nights := int64(d / day)
	if d%day != 0 {
		nights++
	}
	return nights
}

// Overlaps reports whether both periods share at least one instant.
// Touching periods (one checks out when the other checks in) do not overlap.
func (p StayPeriod) Overlaps(other StayPeriod) bool {
	return p.checkIn.Before(other.checkOut) && other.checkIn.Before(p.checkOut)
}

// CountOverlaps counts the periods in others that overlap p.
func (p StayPeriod) CountOverlaps(others []StayPeriod) int64 {
	var n int64
	for _, other := range others {
		if p.Overlaps(other) {
			n++
		}
	}
	return n
}

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(value string) SpecialRequests {
	return SpecialRequests{value: strings.TrimSpace(value)}
}

func (s SpecialRequests) String() string {
	return s.value
}

func (s SpecialRequests) IsEmpty() bool {
	return s.value == ""
}

func (s SpecialRequests) Ptr() *string {
	if s.IsEmpty() {
		return nil
	}
	v := s.value
	return &v
}
