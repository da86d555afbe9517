package models

import "time"

type ActivityLog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`

	// joined for the admin feed
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

// StudentStats is the aggregate the student dashboard renders.
type StudentStats struct {
	TotalMinutes     int `json:"total_minutes"`
	CurrentStreak    int `json:"current_streak"`
	CompletedCourses int `json:"completed_courses"`
	ActiveCourses    int `json:"active_courses"`
}

type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	ActiveUsers       int `json:"activeUsers"`
	TotalEnrollments  int `json:"totalEnrollments"`
	CourseCompletions int `json:"courseCompletions"`
	TotalCourses      int `json:"totalCourses"`
}

type CourseDistribution struct {
	Title    string `json:"title"`
	Students int    `json:"students"`
}

type UserGrowthPoint struct {
	Date  string `json:"date"`
	Users int    `json:"users"`
}

type TopUser struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ActivityCount int    `json:"activity_count"`
}
