package services

import (
	"github.com/Amsa221/softskills-project/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	CategorieService   CategorieService
	ArticleService     ArticleService
	CommentaireService CommentaireService
	PaymentService     PaymentService
	AnalyticsService   AnalyticsService
	SkillService       SkillService
	NewsletterService  NewsletterService
	EmailService       email.Provider
}
