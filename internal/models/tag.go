package models

// Tag names are normalized to lowercase before storage.
type Tag struct {
	BaseModel
	Nom string `gorm:"size:100;uniqueIndex;not null" json:"nom"`
}
