package services

import (
	"prolync/internal/models"
	"prolync/internal/repositories"
)

type ContactService interface {
	Submit(msg *models.ContactMessage) error
}

type contactService struct {
	contacts repositories.ContactRepository
	notifier Notifier
}

func NewContactService(contacts repositories.ContactRepository, notifier Notifier) ContactService {
	return &contactService{contacts: contacts, notifier: notifier}
}

func (s *contactService) Submit(msg *models.ContactMessage) error {
	if err := s.contacts.Create(msg); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyContactMessage(msg.Name, msg.Email, msg.Subject)
	}
	return nil
}
