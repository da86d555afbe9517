package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type BookingRepository interface {
	Create(b *models.Booking) error
	CountBooked(mentorID int, timeSlot string) (int, error)
	ExistsBooked(userID, mentorID int, timeSlot string) (bool, error)
	SlotCounts(mentorID int) (map[string]int, error)
	ListAll() ([]*models.Booking, error)
}

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{DB: db}
}

func (r *bookingRepository) Create(b *models.Booking) error {
	const q = `
		INSERT INTO mentor_bookings (user_id, user_name, user_email, mentor_id, time_slot, topic, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING booking_id, created_at
	`
	if err := r.DB.QueryRow(q,
		b.UserID, b.UserName, b.UserEmail, b.MentorID, b.TimeSlot, b.Topic, b.Status,
	).Scan(&b.BookingID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) CountBooked(mentorID int, timeSlot string) (int, error) {
	const q = `
		SELECT COUNT(*) FROM mentor_bookings
		WHERE mentor_id = $1 AND time_slot = $2 AND status = 'booked'
	`
	var count int
	if err := r.DB.QueryRow(q, mentorID, timeSlot).Scan(&count); err != nil {
		return 0, fmt.Errorf("count booked: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) ExistsBooked(userID, mentorID int, timeSlot string) (bool, error) {
	const q = `
		SELECT booking_id FROM mentor_bookings
		WHERE user_id = $1 AND mentor_id = $2 AND time_slot = $3 AND status = 'booked'
		LIMIT 1
	`
	var id int
	err := r.DB.QueryRow(q, userID, mentorID, timeSlot).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check duplicate booking: %w", err)
	}
	return true, nil
}

func (r *bookingRepository) SlotCounts(mentorID int) (map[string]int, error) {
	const q = `
		SELECT time_slot, COUNT(*) FROM mentor_bookings
		WHERE mentor_id = $1 AND status = 'booked'
		GROUP BY time_slot
	`
	rows, err := r.DB.Query(q, mentorID)
	if err != nil {
		return nil, fmt.Errorf("slot counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var slot string
		var n int
		if err := rows.Scan(&slot, &n); err != nil {
			return nil, fmt.Errorf("scan slot count: %w", err)
		}
		counts[slot] = n
	}
	return counts, rows.Err()
}

func (r *bookingRepository) ListAll() ([]*models.Booking, error) {
	const q = `
		SELECT booking_id, user_id, user_name, user_email, mentor_id, time_slot, topic, status, created_at
		FROM mentor_bookings
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.BookingID, &b.UserID, &b.UserName, &b.UserEmail,
			&b.MentorID, &b.TimeSlot, &b.Topic, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	return bookings, rows.Err()
}
