package dto

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
	Nom   string `json:"nom" validate:"max=100"`
}

type ContactRequest struct {
	Nom     string `json:"nom" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Sujet   string `json:"sujet" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=20,max=5000"`
}
