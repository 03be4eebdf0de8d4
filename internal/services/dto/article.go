package dto

import (
	"time"

	"github.com/Amsa221/softskills-project/internal/models"
)

type CreateArticleRequest struct {
	Titre           string   `json:"titre" validate:"required,min=3,max=250"`
	Contenu         string   `json:"contenu" validate:"required,min=10"`
	Image           string   `json:"image" validate:"max=500"`
	CategorieID     *string  `json:"categorie_id"`
	Statut          string   `json:"statut" validate:"omitempty,is-article-statut"`
	MetaDescription string   `json:"meta_description" validate:"max=300"`
	MotsCles        string   `json:"mots_cles" validate:"max=300"`
	Tags            []string `json:"tags" validate:"max=20,dive,min=2,max=100"`
}

type UpdateArticleRequest struct {
	Titre           *string  `json:"titre" validate:"omitempty,min=3,max=250"`
	Contenu         *string  `json:"contenu" validate:"omitempty,min=10"`
	Image           *string  `json:"image" validate:"omitempty,max=500"`
	CategorieID     *string  `json:"categorie_id"`
	Statut          *string  `json:"statut" validate:"omitempty,is-article-statut"`
	MetaDescription *string  `json:"meta_description" validate:"omitempty,max=300"`
	MotsCles        *string  `json:"mots_cles" validate:"omitempty,max=300"`
	Tags            []string `json:"tags" validate:"omitempty,max=20,dive,min=2,max=100"`
}

type ArticleListQuery struct {
	Categorie string `form:"categorie"`
	Statut    string `form:"statut" validate:"omitempty,is-article-statut"`
	Search    string `form:"search" validate:"max=100"`
}

// ArticleListItem is the list projection: body replaced by the excerpt.
type ArticleListItem struct {
	ID              string            `json:"id"`
	Titre           string            `json:"titre"`
	Slug            string            `json:"slug"`
	Extrait         string            `json:"extrait"`
	Image           string            `json:"image,omitempty"`
	Categorie       *models.Categorie `json:"categorie,omitempty"`
	Auteur          string            `json:"auteur"`
	Statut          string            `json:"statut"`
	MetaDescription string            `json:"meta_description"`
	MotsCles        string            `json:"mots_cles"`
	Tags            []models.Tag      `json:"tags,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

type ArticleDetail struct {
	ArticleListItem
	Contenu      string                `json:"contenu"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Commentaires []CommentaireThreaded `json:"commentaires"`
}

func NewArticleListItem(a *models.Article) ArticleListItem {
	return ArticleListItem{
		ID:              a.ID,
		Titre:           a.Titre,
		Slug:            a.Slug,
		Extrait:         a.Extrait(),
		Image:           a.Image,
		Categorie:       a.Categorie,
		Auteur:          a.AuteurNom,
		Statut:          string(a.Statut),
		MetaDescription: a.MetaDescription,
		MotsCles:        a.MotsCles,
		Tags:            a.Tags,
		CreatedAt:       a.CreatedAt,
	}
}
