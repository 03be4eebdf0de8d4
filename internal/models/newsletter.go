package models

type NewsletterSubscription struct {
	BaseModel
	Email string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Nom   string `gorm:"size:100" json:"nom,omitempty"`
	Actif bool   `gorm:"not null;default:true" json:"actif"`
}
