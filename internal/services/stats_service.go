package services

import (
	"log"
	"math"
	"time"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

type StatsService interface {
	StudentStats(userID int) (*models.StudentStats, error)
	DashboardStats() (*models.DashboardStats, error)
	ChartData() (map[string]interface{}, error)
}

type statsService struct {
	learning    repositories.LearningRepository
	enrollments repositories.EnrollmentRepository
	users       repositories.UserRepository
	courses     repositories.CourseRepository

	now func() time.Time
}

func NewStatsService(
	learning repositories.LearningRepository,
	enrollments repositories.EnrollmentRepository,
	users repositories.UserRepository,
	courses repositories.CourseRepository,
) StatsService {
	return &statsService{
		learning:    learning,
		enrollments: enrollments,
		users:       users,
		courses:     courses,
		now:         time.Now,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak walks distinct activity dates (newest first). The chain
// counts only when it starts today or yesterday; a gap of more than one day
// breaks it.
func ComputeStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	today := dateOnly(now)
	yesterday := today.AddDate(0, 0, -1)
	head := dateOnly(dates[0])

	if !head.Equal(today) && !head.Equal(yesterday) {
		return 0
	}

	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		cur := dateOnly(dates[i])
		next := dateOnly(dates[i+1])
		if cur.Sub(next) == 24*time.Hour {
			streak++
		} else {
			break
		}
	}
	return streak
}

func (s *statsService) StudentStats(userID int) (*models.StudentStats, error) {
	totalSeconds, err := s.learning.TotalSeconds(userID)
	if err != nil {
		return nil, err
	}

	dates, err := s.learning.DistinctActivityDates(userID)
	if err != nil {
		return nil, err
	}
	streak := ComputeStreak(dates, s.now())

	// keep the cache table in sync; read-then-upsert, no transaction
	if err := s.learning.UpsertStreak(userID, streak); err != nil {
		log.Printf("[stats][student] streak cache update failed user_id=%d: %v", userID, err)
	}

	completed, active, err := s.enrollments.StatusCounts(userID)
	if err != nil {
		return nil, err
	}

	return &models.StudentStats{
		TotalMinutes:     int(math.Round(float64(totalSeconds) / 60)),
		CurrentStreak:    streak,
		CompletedCourses: completed,
		ActiveCourses:    active,
	}, nil
}

func (s *statsService) DashboardStats() (*models.DashboardStats, error) {
	totalUsers, err := s.users.GetCount()
	if err != nil {
		return nil, err
	}
	totalEnrollments, err := s.enrollments.GetCount()
	if err != nil {
		return nil, err
	}
	completions, err := s.enrollments.GetCompletedCount()
	if err != nil {
		return nil, err
	}
	totalCourses, err := s.courses.GetCount()
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalUsers: totalUsers,
		// login activity is not tracked precisely; the dashboard shows 80%
		// of the total as a stand-in
		ActiveUsers:       int(float64(totalUsers) * 0.8),
		TotalEnrollments:  totalEnrollments,
		CourseCompletions: completions,
		TotalCourses:      totalCourses,
	}, nil
}

func (s *statsService) ChartData() (map[string]interface{}, error) {
	dist, err := s.courses.Distribution()
	if err != nil {
		return nil, err
	}

	// fixed series; no historical signup data is collected yet
	growth := []models.UserGrowthPoint{
		{Date: "Mon", Users: 5},
		{Date: "Tue", Users: 8},
		{Date: "Wed", Users: 12},
		{Date: "Thu", Users: 15},
		{Date: "Fri", Users: 20},
		{Date: "Sat", Users: 25},
		{Date: "Sun", Users: 30},
	}

	return map[string]interface{}{
		"courseDistribution": dist,
		"userGrowth":         growth,
	}, nil
}
