package services

import (
	"fmt"

	"github.com/Amsa221/softskills-project/internal/email"
	"github.com/Amsa221/softskills-project/internal/logger"
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

type NewsletterService interface {
	Subscribe(req *dto.SubscribeRequest) (*models.NewsletterSubscription, error)
	Contact(req *dto.ContactRequest) error
}

type newsletterService struct {
	subscriptions repositories.NewsletterRepository
	mailer        email.Provider
	contactInbox  string
}

func NewNewsletterService(subscriptions repositories.NewsletterRepository, mailer email.Provider, contactInbox string) NewsletterService {
	return &newsletterService{
		subscriptions: subscriptions,
		mailer:        mailer,
		contactInbox:  contactInbox,
	}
}

func (s *newsletterService) Subscribe(req *dto.SubscribeRequest) (*models.NewsletterSubscription, error) {
	sub := &models.NewsletterSubscription{
		Email: req.Email,
		Nom:   req.Nom,
		Actif: true,
	}
	if err := s.subscriptions.Subscribe(sub); err != nil {
		if err == repositories.ErrAlreadySubscribed {
			return nil, apperrors.ErrAlreadyExists(err, "newsletter", "This email is already subscribed")
		}
		return nil, apperrors.InternalError(err)
	}

	// The subscription stands even when the confirmation mail fails.
	msg := &email.Message{
		To:      sub.Email,
		Subject: "Bienvenue dans la newsletter",
		Body:    fmt.Sprintf("Bonjour %s,\n\nVotre inscription a bien ete prise en compte.", sub.Nom),
	}
	if err := s.mailer.Send(msg); err != nil {
		logger.Warn("newsletter confirmation mail failed", "email", sub.Email, "error", err)
	}

	return sub, nil
}

func (s *newsletterService) Contact(req *dto.ContactRequest) error {
	msg := &email.Message{
		To:      s.contactInbox,
		Subject: fmt.Sprintf("[Contact] %s", req.Sujet),
		Body:    fmt.Sprintf("De: %s <%s>\n\n%s", req.Nom, req.Email, req.Message),
	}
	if err := s.mailer.Send(msg); err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalError, "contact", "Failed to deliver the message", 502)
	}
	return nil
}
