package models

type Categorie struct {
	BaseModel
	Nom             string `gorm:"size:100;uniqueIndex;not null" json:"nom"`
	Slug            string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description     string `gorm:"type:text" json:"description"`
	MetaDescription string `gorm:"size:160" json:"meta_description"`

	Articles []Article `gorm:"foreignKey:CategorieID" json:"-"`
}
