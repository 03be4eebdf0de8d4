package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type NewsletterRepository interface {
	Subscribe(sub *models.NewsletterSubscription) error
}

type NewsletterRepositoryImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &NewsletterRepositoryImpl{db: db}
}

// Subscribe inserts the address or, when a row already holds it, either
// reports the active subscription or reactivates an unsubscribed one.
// The unique index on email covers inactive rows too, so a plain insert
// is never attempted against an existing address.
func (r *NewsletterRepositoryImpl) Subscribe(sub *models.NewsletterSubscription) error {
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))

	var existing models.NewsletterSubscription
	err := r.db.First(&existing, "email = ?", sub.Email).Error
	switch {
	case err == nil:
		if existing.Actif {
			return ErrAlreadySubscribed
		}
		if err := r.db.Model(&existing).Update("actif", true).Error; err != nil {
			return err
		}
		existing.Actif = true
		*sub = existing
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.Create(sub).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySubscribed
			}
			return err
		}
		return nil
	default:
		return err
	}
}
