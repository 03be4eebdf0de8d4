package dto

type CategorieRequest struct {
	Nom             string `json:"nom" validate:"required,min=3,max=100"`
	Description     string `json:"description" validate:"max=2000"`
	MetaDescription string `json:"meta_description" validate:"max=160"`
}
