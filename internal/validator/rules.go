package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/Amsa221/softskills-project/internal/models"
)

// registerCustomRules wires the domain enum checks into the validator.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failures are startup bugs.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-article-statut", validateArticleStatut)
	mustRegister("is-payment-status", validatePaymentStatus)
}

func validateArticleStatut(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the job of 'required'
	}
	s := models.ArticleStatut(value)
	return s == models.ArticleStatutDraft || s == models.ArticleStatutPublished
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidPaymentStatus(models.PaymentStatus(value))
}
