package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

func CreateTestCategorie(t *testing.T, db *gorm.DB, nom, slug string) models.Categorie {
	t.Helper()
	categorie := models.Categorie{
		Nom:  nom,
		Slug: slug,
	}
	if err := db.Create(&categorie).Error; err != nil {
		t.Fatalf("failed to create test categorie: %v", err)
	}
	return categorie
}

func CreateTestArticle(t *testing.T, db *gorm.DB, titre, slug string, statut models.ArticleStatut, auteurID string) models.Article {
	t.Helper()
	article := models.Article{
		Titre:     titre,
		Slug:      slug,
		Contenu:   "Contenu de test suffisamment long pour la validation.",
		AuteurID:  &auteurID,
		AuteurNom: "Test Author",
		Statut:    statut,
	}
	if err := db.Create(&article).Error; err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return article
}

func CreateTestCommentaire(t *testing.T, db *gorm.DB, articleID string, valide bool, parentID *string) models.Commentaire {
	t.Helper()
	commentaire := models.Commentaire{
		ArticleID: articleID,
		Auteur:    "Testeur",
		Contenu:   "Un commentaire de test valide.",
		Valide:    valide,
		ParentID:  parentID,
	}
	if err := db.Create(&commentaire).Error; err != nil {
		t.Fatalf("failed to create test commentaire: %v", err)
	}
	return commentaire
}

func CreateTestPayment(t *testing.T, db *gorm.DB, ownerID string, amount string, status models.PaymentStatus) models.Payment {
	t.Helper()
	payment := models.Payment{
		OwnerID: ownerID,
		Amount:  decimal.RequireFromString(amount),
		Status:  status,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("failed to create test payment: %v", err)
	}
	return payment
}
