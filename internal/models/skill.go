package models

type SoftSkill struct {
	BaseModel
	Nom         string `gorm:"size:150;not null" json:"nom"`
	Description string `gorm:"type:text" json:"description"`
}
