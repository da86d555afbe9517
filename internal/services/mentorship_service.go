package services

import (
	"errors"
	"log"
	"time"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

var (
	ErrSlotInPast       = errors.New("slot is in the past")
	ErrMentorNotFound   = errors.New("mentor not found")
	ErrDuplicateBooking = errors.New("duplicate booking")
	ErrSlotFull         = errors.New("slot is fully booked")
)

// defaultMaxParticipants applies when a mentor row has no explicit cap.
const defaultMaxParticipants = 5

type MentorshipService interface {
	ListMentors() ([]*models.Mentor, error)
	BookedSlots(mentorID int) ([]*models.SlotOccupancy, error)
	Book(userID, mentorID int, timeSlot, topic string) (*models.Booking, error)
	Sessions() ([]*models.Booking, error)
}

type mentorshipService struct {
	mentors  repositories.MentorRepository
	bookings repositories.BookingRepository
	users    repositories.UserRepository
	activity ActivityService

	now func() time.Time
}

func NewMentorshipService(
	mentors repositories.MentorRepository,
	bookings repositories.BookingRepository,
	users repositories.UserRepository,
	activity ActivityService,
) MentorshipService {
	return &mentorshipService{
		mentors:  mentors,
		bookings: bookings,
		users:    users,
		activity: activity,
		now:      time.Now,
	}
}

func capOf(m *models.Mentor) int {
	if m.MaxParticipants > 0 {
		return m.MaxParticipants
	}
	return defaultMaxParticipants
}

// ListMentors marks a mentor fully booked when every availability slot is
// at or over capacity. Slots already past this week count as unavailable,
// same rule as the booking path.
func (s *mentorshipService) ListMentors() ([]*models.Mentor, error) {
	mentors, err := s.mentors.List()
	if err != nil {
		return nil, err
	}
	now := s.now()

	for _, m := range mentors {
		if len(m.Availability) == 0 {
			continue
		}
		counts, err := s.bookings.SlotCounts(m.ID)
		if err != nil {
			return nil, err
		}
		max := capOf(m)
		full := true
		for _, slot := range m.Availability {
			if IsSlotInFuture(slot, now) && counts[slot] < max {
				full = false
				break
			}
		}
		m.IsFullyBooked = full
	}
	return mentors, nil
}

func (s *mentorshipService) BookedSlots(mentorID int) ([]*models.SlotOccupancy, error) {
	mentor, err := s.mentors.GetByID(mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	counts, err := s.bookings.SlotCounts(mentorID)
	if err != nil {
		return nil, err
	}

	max := capOf(mentor)
	out := make([]*models.SlotOccupancy, 0, len(mentor.Availability))
	for _, slot := range mentor.Availability {
		n := counts[slot]
		out = append(out, &models.SlotOccupancy{
			TimeSlot: slot,
			Count:    n,
			Max:      max,
			IsFull:   n >= max,
		})
	}
	return out, nil
}

// Book runs the admission pipeline: future slot, no duplicate for this
// (user, mentor, slot), mentor exists, occupancy under the cap. The
// count-then-insert is two separate round trips with no lock; concurrent
// requests at the capacity boundary can overbook.
func (s *mentorshipService) Book(userID, mentorID int, timeSlot, topic string) (*models.Booking, error) {
	if !IsSlotInFuture(timeSlot, s.now()) {
		return nil, ErrSlotInPast
	}

	mentor, err := s.mentors.GetByID(mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	exists, err := s.bookings.ExistsBooked(userID, mentorID, timeSlot)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateBooking
	}

	count, err := s.bookings.CountBooked(mentorID, timeSlot)
	if err != nil {
		return nil, err
	}
	if count >= capOf(mentor) {
		return nil, ErrSlotFull
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// name/email snapshot captured now; later profile edits do not touch
	// historical bookings
	booking := &models.Booking{
		UserID:    userID,
		UserName:  user.Name,
		UserEmail: user.Email,
		MentorID:  mentorID,
		TimeSlot:  timeSlot,
		Topic:     topic,
		Status:    models.BookingStatusBooked,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, err
	}

	if s.activity != nil {
		s.activity.Log(userID, "BOOK_SESSION", "Booked "+mentor.Name+" at "+timeSlot, "")
	}
	log.Printf("[mentorship][book] user_id=%d mentor_id=%d slot=%q count_before=%d max=%d",
		userID, mentorID, timeSlot, count, capOf(mentor))
	return booking, nil
}

func (s *mentorshipService) Sessions() ([]*models.Booking, error) {
	return s.bookings.ListAll()
}
