package services

import (
	"errors"
	"time"

	"prolync/internal/models"
)

// in-memory fakes shared by the service tests

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return errors.New("duplicate email")
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) Delete(id int) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetCount() (int, error) { return len(f.byEmail), nil }

func (f *fakeUserRepo) UpdateLastLogin(id int) error { return nil }

func (f *fakeUserRepo) UpdatePasswordByEmail(email, passwordHash string) (bool, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return false, nil
	}
	u.PasswordHash = passwordHash
	return true, nil
}

func (f *fakeUserRepo) UpdatePassword(id int, passwordHash string) error {
	for _, u := range f.byEmail {
		if u.ID == id {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeAdminRepo struct {
	byEmail map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeAdminRepo) GetByUserID(userID int) (*models.Admin, error) {
	for _, a := range f.byEmail {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepo) UpdatePasswordByEmail(email, passwordHash string) (bool, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return false, nil
	}
	a.PasswordHash = passwordHash
	return true, nil
}

func (f *fakeAdminRepo) UpdatePassword(userID int, passwordHash string) error {
	for _, a := range f.byEmail {
		if a.UserID == userID {
			a.PasswordHash = passwordHash
		}
	}
	return nil
}

type fakeOTPRepo struct {
	byEmail map[string]*models.OTPCode
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{byEmail: make(map[string]*models.OTPCode)}
}

func (f *fakeOTPRepo) Upsert(email, code string, expiresAt time.Time) error {
	f.byEmail[email] = &models.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeOTPRepo) GetByEmail(email string) (*models.OTPCode, error) {
	return f.byEmail[email], nil
}

func (f *fakeOTPRepo) GetValid(email, code string, now time.Time) (*models.OTPCode, error) {
	rec, ok := f.byEmail[email]
	if !ok || rec.Code != code || now.After(rec.ExpiresAt) {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeOTPRepo) Delete(email string) error {
	delete(f.byEmail, email)
	return nil
}

type fakeEmailService struct {
	otpSent     []string // emails, in order
	lastCode    string
	welcomeSent []string
	failSend    bool
}

func (f *fakeEmailService) SendOTPEmail(email, code string) error {
	if f.failSend {
		return errors.New("smtp down")
	}
	f.otpSent = append(f.otpSent, email)
	f.lastCode = code
	return nil
}

func (f *fakeEmailService) SendWelcomeEmail(email, name string) error {
	f.welcomeSent = append(f.welcomeSent, email)
	return nil
}

type fakeMentorRepo struct {
	mentors map[int]*models.Mentor
}

func newFakeMentorRepo(mentors ...*models.Mentor) *fakeMentorRepo {
	f := &fakeMentorRepo{mentors: make(map[int]*models.Mentor)}
	for _, m := range mentors {
		f.mentors[m.ID] = m
	}
	return f
}

func (f *fakeMentorRepo) List() ([]*models.Mentor, error) {
	var out []*models.Mentor
	for _, m := range f.mentors {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMentorRepo) GetByID(id int) (*models.Mentor, error) {
	return f.mentors[id], nil
}

type fakeBookingRepo struct {
	bookings []*models.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	b.BookingID = f.nextID
	f.nextID++
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingRepo) CountBooked(mentorID int, timeSlot string) (int, error) {
	n := 0
	for _, b := range f.bookings {
		if b.MentorID == mentorID && b.TimeSlot == timeSlot && b.Status == models.BookingStatusBooked {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) ExistsBooked(userID, mentorID int, timeSlot string) (bool, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.MentorID == mentorID && b.TimeSlot == timeSlot && b.Status == models.BookingStatusBooked {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) SlotCounts(mentorID int) (map[string]int, error) {
	counts := make(map[string]int)
	for _, b := range f.bookings {
		if b.MentorID == mentorID && b.Status == models.BookingStatusBooked {
			counts[b.TimeSlot]++
		}
	}
	return counts, nil
}

func (f *fakeBookingRepo) ListAll() ([]*models.Booking, error) {
	return f.bookings, nil
}

type fakeActivity struct {
	actions []string
}

func (f *fakeActivity) Log(userID int, action, details, ip string) {
	f.actions = append(f.actions, action)
}

func (f *fakeActivity) Feed(userID int) ([]*models.ActivityLog, error) { return nil, nil }

func (f *fakeActivity) RecentWithUsers(limit int) ([]*models.ActivityLog, error) { return nil, nil }

func (f *fakeActivity) TopUsers(limit int) ([]*models.TopUser, error) { return nil, nil }
