package models

import "time"

type Mentor struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Company         string    `json:"company"`
	Avatar          string    `json:"avatar"`
	Skills          []string  `json:"skills"`
	Bio             string    `json:"bio"`
	DetailedBio     string    `json:"detailed_bio"`
	Availability    []string  `json:"availability"`
	MaxParticipants int       `json:"max_participants"`
	CreatedAt       time.Time `json:"created_at"`

	// computed at listing time, not stored
	IsFullyBooked bool `json:"is_fully_booked"`
}

const (
	BookingStatusBooked    = "booked"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking carries a name/email snapshot captured at booking time, so later
// profile edits do not change historical rows.
type Booking struct {
	BookingID int       `json:"booking_id"`
	UserID    int       `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	MentorID  int       `json:"mentor_id"`
	TimeSlot  string    `json:"time_slot"`
	Topic     string    `json:"topic"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotOccupancy struct {
	TimeSlot string `json:"time_slot"`
	Count    int    `json:"count"`
	Max      int    `json:"max"`
	IsFull   bool   `json:"is_full"`
}
