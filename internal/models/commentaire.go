package models

type Commentaire struct {
	BaseModel
	ArticleID string   `gorm:"type:uuid;index;not null" json:"article_id"`
	Article   *Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`

	// Auteur is the display label; AuteurUserID backreferences the
	// authenticated account when there was one.
	Auteur       string  `gorm:"size:150;not null" json:"auteur"`
	AuteurUserID *string `gorm:"type:uuid;index" json:"auteur_user_id,omitempty"`

	Contenu string `gorm:"type:text;not null" json:"contenu"`
	Valide  bool   `gorm:"not null;default:false;index" json:"valide"`

	// Flat self-reference; replies are assembled into a tree at read time.
	ParentID *string       `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Reponses []Commentaire `gorm:"foreignKey:ParentID" json:"reponses,omitempty"`
}
