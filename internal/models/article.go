package models

type Article struct {
	BaseModel
	Titre   string `gorm:"size:250;not null" json:"titre"`
	Slug    string `gorm:"size:300;uniqueIndex;not null" json:"slug"`
	Contenu string `gorm:"type:text;not null" json:"contenu"`
	Image   string `gorm:"size:500" json:"image,omitempty"`

	// The category and the author are weak references: the article
	// survives deletion of either.
	CategorieID *string    `gorm:"type:uuid;index" json:"categorie_id,omitempty"`
	Categorie   *Categorie `gorm:"foreignKey:CategorieID;constraint:OnDelete:SET NULL" json:"categorie,omitempty"`
	AuteurID    *string    `gorm:"type:uuid;index" json:"auteur_id,omitempty"`
	AuteurNom   string     `gorm:"size:150" json:"auteur"`

	Statut          ArticleStatut `gorm:"size:10;index;not null;default:'draft'" json:"statut"`
	MetaDescription string        `gorm:"size:300" json:"meta_description"`
	MotsCles        string        `gorm:"size:300" json:"mots_cles"`

	Tags         []Tag         `gorm:"many2many:article_tags" json:"tags,omitempty"`
	Commentaires []Commentaire `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
}

const extraitLength = 300

// Extrait returns the list-view excerpt of the article body.
func (a *Article) Extrait() string {
	runes := []rune(a.Contenu)
	if len(runes) <= extraitLength {
		return a.Contenu
	}
	return string(runes[:extraitLength]) + "..."
}
