package repositories

import (
	"database/sql"
	"fmt"

	"prolync/internal/models"
)

type ActivityRepository interface {
	Create(a *models.ActivityLog) error
	ListByUser(userID, limit int) ([]*models.ActivityLog, error)
	RecentWithUsers(limit int) ([]*models.ActivityLog, error)
	TopUsers(limit int) ([]*models.TopUser, error)
}

type activityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{DB: db}
}

func (r *activityRepository) Create(a *models.ActivityLog) error {
	const q = `
		INSERT INTO activity_logs (user_id, action, details, ip_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, a.UserID, a.Action, a.Details, a.IPAddress).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("create activity log: %w", err)
	}
	return nil
}

func (r *activityRepository) ListByUser(userID, limit int) ([]*models.ActivityLog, error) {
	const q = `
		SELECT id, user_id, action, details, ip_address, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.DB.Query(q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var logs []*models.ActivityLog
	for rows.Next() {
		var a models.ActivityLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Details, &a.IPAddress, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		logs = append(logs, &a)
	}
	return logs, rows.Err()
}

func (r *activityRepository) RecentWithUsers(limit int) ([]*models.ActivityLog, error) {
	const q = `
		SELECT a.id, a.user_id, a.action, a.details, a.ip_address, a.created_at,
			COALESCE(u.name, ''), COALESCE(u.email, '')
		FROM activity_logs a
		LEFT JOIN users u ON a.user_id = u.id
		ORDER BY a.created_at DESC
		LIMIT $1
	`
	rows, err := r.DB.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()

	var logs []*models.ActivityLog
	for rows.Next() {
		var a models.ActivityLog
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Details, &a.IPAddress, &a.CreatedAt, &a.UserName, &a.UserEmail); err != nil {
			return nil, fmt.Errorf("scan recent activity: %w", err)
		}
		logs = append(logs, &a)
	}
	return logs, rows.Err()
}

func (r *activityRepository) TopUsers(limit int) ([]*models.TopUser, error) {
	const q = `
		SELECT u.id, u.name, u.email, COUNT(a.id) AS activity_count
		FROM users u
		LEFT JOIN activity_logs a ON u.id = a.user_id
		GROUP BY u.id, u.name, u.email
		ORDER BY activity_count DESC
		LIMIT $1
	`
	rows, err := r.DB.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("top users: %w", err)
	}
	defer rows.Close()

	var users []*models.TopUser
	for rows.Next() {
		var u models.TopUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.ActivityCount); err != nil {
			return nil, fmt.Errorf("scan top user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
