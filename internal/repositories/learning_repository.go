package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// LearningRepository covers the learning_activity table (per-day study time)
// and the learning_streak cache.
type LearningRepository interface {
	TotalSeconds(userID int) (int, error)
	DistinctActivityDates(userID int) ([]time.Time, error)
	UpsertStreak(userID, currentStreak int) error
}

type learningRepository struct {
	DB *sql.DB
}

func NewLearningRepository(db *sql.DB) LearningRepository {
	return &learningRepository{DB: db}
}

func (r *learningRepository) TotalSeconds(userID int) (int, error) {
	const q = `SELECT COALESCE(SUM(time_spent_seconds), 0) FROM learning_activity WHERE user_id = $1`
	var total int
	if err := r.DB.QueryRow(q, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total learning seconds: %w", err)
	}
	return total, nil
}

// DistinctActivityDates returns days with any activity, newest first.
func (r *learningRepository) DistinctActivityDates(userID int) ([]time.Time, error) {
	const q = `
		SELECT DISTINCT activity_date FROM learning_activity
		WHERE user_id = $1
		ORDER BY activity_date DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, fmt.Errorf("distinct activity dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan activity date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// UpsertStreak keeps the cache table in sync with the freshly computed
// value. Read-then-upsert, no transaction (matches the rest of the flows).
func (r *learningRepository) UpsertStreak(userID, currentStreak int) error {
	const q = `
		INSERT INTO learning_streak (user_id, current_streak, last_active_date, max_streak)
		VALUES ($1, $2, CURRENT_DATE, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
			last_active_date = CURRENT_DATE,
			max_streak = GREATEST(learning_streak.max_streak, EXCLUDED.current_streak)
	`
	if _, err := r.DB.Exec(q, userID, currentStreak); err != nil {
		return fmt.Errorf("upsert streak: %w", err)
	}
	return nil
}
