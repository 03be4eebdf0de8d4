package dto

type SkillRequest struct {
	Nom         string `json:"nom" validate:"required,min=2,max=150"`
	Description string `json:"description" validate:"max=2000"`
}
