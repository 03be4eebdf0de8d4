package models

type ArticleStatut string
type PaymentStatus string

const (
	ArticleStatutDraft     ArticleStatut = "draft"
	ArticleStatutPublished ArticleStatut = "published"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// paymentStatusTransitions is the legal transition graph for payments.
// Pending may settle either way; completed and failed are terminal.
var paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending: {PaymentStatusCompleted, PaymentStatusFailed},
}

func CanTransitionPayment(current, target PaymentStatus) bool {
	for _, s := range paymentStatusTransitions[current] {
		if s == target {
			return true
		}
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}
