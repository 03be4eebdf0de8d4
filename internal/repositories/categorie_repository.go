package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrCategorieNotFound = errors.New("categorie not found")

type CategorieRepository interface {
	Create(categorie *models.Categorie) error
	Update(categorie *models.Categorie) error
	Delete(id string) error
	FindByID(id string) (*models.Categorie, error)
	FindBySlug(slug string) (*models.Categorie, error)
	FindAll() ([]models.Categorie, error)
	SlugExists(slug string) (bool, error)
	NomExists(nom, exceptID string) (bool, error)
}

type CategorieRepositoryImpl struct {
	db *gorm.DB
}

func NewCategorieRepository(db *gorm.DB) CategorieRepository {
	return &CategorieRepositoryImpl{db: db}
}

func (r *CategorieRepositoryImpl) Create(categorie *models.Categorie) error {
	return r.db.Create(categorie).Error
}

func (r *CategorieRepositoryImpl) Update(categorie *models.Categorie) error {
	return r.db.Save(categorie).Error
}

func (r *CategorieRepositoryImpl) Delete(id string) error {
	// Articles keep living with a NULL category.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).
			Where("categorie_id = ?", id).
			Update("categorie_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Categorie{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCategorieNotFound
		}
		return nil
	})
	return err
}

func (r *CategorieRepositoryImpl) FindByID(id string) (*models.Categorie, error) {
	var categorie models.Categorie
	err := r.db.First(&categorie, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategorieNotFound
		}
		return nil, err
	}
	return &categorie, nil
}

func (r *CategorieRepositoryImpl) FindBySlug(slug string) (*models.Categorie, error) {
	var categorie models.Categorie
	err := r.db.First(&categorie, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategorieNotFound
		}
		return nil, err
	}
	return &categorie, nil
}

func (r *CategorieRepositoryImpl) FindAll() ([]models.Categorie, error) {
	var categories []models.Categorie
	err := r.db.Order("nom asc").Find(&categories).Error
	return categories, err
}

func (r *CategorieRepositoryImpl) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Categorie{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// NomExists reports whether another category already uses nom; exceptID
// lets a rename skip the row being updated.
func (r *CategorieRepositoryImpl) NomExists(nom, exceptID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.Categorie{}).Where("nom = ?", nom)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}
