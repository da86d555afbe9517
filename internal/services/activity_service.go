package services

import (
	"log"
	"time"

	"prolync/internal/models"
	"prolync/internal/repositories"
)

// Broadcaster is what the activity service needs from the realtime hub.
type Broadcaster interface {
	Broadcast(eventType string, payload interface{})
}

type ActivityService interface {
	// Log is best effort: failures are logged, never surfaced to the caller.
	Log(userID int, action, details, ip string)
	Feed(userID int) ([]*models.ActivityLog, error)
	RecentWithUsers(limit int) ([]*models.ActivityLog, error)
	TopUsers(limit int) ([]*models.TopUser, error)
}

type activityService struct {
	repo repositories.ActivityRepository
	hub  Broadcaster
}

func NewActivityService(repo repositories.ActivityRepository, hub Broadcaster) ActivityService {
	return &activityService{repo: repo, hub: hub}
}

func (s *activityService) Log(userID int, action, details, ip string) {
	entry := &models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		IPAddress: ip,
	}
	if err := s.repo.Create(entry); err != nil {
		log.Printf("[activity][log] insert failed user_id=%d action=%s: %v", userID, action, err)
		return
	}

	if s.hub != nil {
		s.hub.Broadcast("new_activity", map[string]interface{}{
			"user_id":    userID,
			"action":     action,
			"details":    details,
			"created_at": entry.CreatedAt.Format(time.RFC3339),
		})
		if action == "REGISTER" {
			s.hub.Broadcast("stats_update", map[string]interface{}{"type": "USER_REGISTERED"})
		}
	}
}

func (s *activityService) Feed(userID int) ([]*models.ActivityLog, error) {
	return s.repo.ListByUser(userID, 50)
}

func (s *activityService) RecentWithUsers(limit int) ([]*models.ActivityLog, error) {
	return s.repo.RecentWithUsers(limit)
}

func (s *activityService) TopUsers(limit int) ([]*models.TopUser, error) {
	return s.repo.TopUsers(limit)
}
