package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date with no time-of-day component. It travels as
// "YYYY-MM-DD" over JSON and as a DATE column in the store.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	dd, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = dd
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(time.DateOnly), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		dd, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = dd
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

// DateRange is a stay expressed as closed calendar-date interval
// [Start, End]. Start must be strictly before End: a zero-night stay is
// never valid.
type DateRange struct {
	Start Date
	End   Date
}

func (r DateRange) Valid() bool {
	return r.Start.Before(r.End.Time)
}

// Overlaps reports whether two stays for the same room conflict. Dates are
// inclusive on both ends, so a stay ending on day D conflicts with a stay
// starting on day D.
func (r DateRange) Overlaps(o DateRange) bool {
	return !(r.End.Before(o.Start.Time) || r.Start.After(o.End.Time))
}

type Client struct {
	ID         int    `json:"id" db:"id"`
	FullName   string `json:"fullName" db:"full_name"`
	Address    string `json:"address,omitempty" db:"address"`
	City       string `json:"city,omitempty" db:"city"`
	PostalCode string `json:"postalCode,omitempty" db:"postal_code"`
	Email      string `json:"email,omitempty" db:"email"`
	Phone      string `json:"phone,omitempty" db:"phone"`
}

type CreateClientRequest struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
}

type Room struct {
	ID     int     `json:"id" db:"id"`
	Number string  `json:"number" db:"number"`
	Floor  int     `json:"floor,omitempty" db:"floor"`
	Type   string  `json:"type,omitempty" db:"room_type"`
	Rate   float64 `json:"rate,omitempty" db:"rate"`
	City   string  `json:"city,omitempty" db:"city"`
}

type CreateRoomRequest struct {
	Number string  `json:"number" validate:"required"`
	Floor  int     `json:"floor"`
	Type   string  `json:"type"`
	Rate   float64 `json:"rate" validate:"gte=0"`
	City   string  `json:"city"`
}

type Reservation struct {
	ID             int    `json:"id" db:"id"`
	ReservationUid string `json:"reservationUid" db:"reservation_uid"`
	ClientID       int    `json:"clientId" db:"client_id"`
	RoomID         int    `json:"roomId" db:"room_id"`
	StartDate      Date   `json:"startDate" db:"start_date"`
	EndDate        Date   `json:"endDate" db:"end_date"`
}

func (r Reservation) Range() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

type CreateReservationRequest struct {
	ClientID  int  `json:"clientId" validate:"required"`
	RoomID    int  `json:"roomId" validate:"required"`
	StartDate Date `json:"startDate" validate:"required"`
	EndDate   Date `json:"endDate" validate:"required"`
}

// ReservationView is the denormalized row returned by the ledger listing.
type ReservationView struct {
	ID             int    `json:"id" db:"id"`
	ReservationUid string `json:"reservationUid" db:"reservation_uid"`
	ClientName     string `json:"clientName" db:"client_name"`
	RoomNumber     string `json:"roomNumber" db:"room_number"`
	RoomCity       string `json:"roomCity,omitempty" db:"room_city"`
	StartDate      Date   `json:"startDate" db:"start_date"`
	EndDate        Date   `json:"endDate" db:"end_date"`
}

type SeedResult struct {
	Seeded  bool `json:"seeded"`
	Clients int  `json:"clients"`
	Rooms   int  `json:"rooms"`
}
