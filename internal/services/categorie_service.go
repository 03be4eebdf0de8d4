package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

const categorieSlugLen = 110

type CategorieService interface {
	Create(req *dto.CategorieRequest) (*models.Categorie, error)
	Update(id string, req *dto.CategorieRequest) (*models.Categorie, error)
	Delete(id string) error
	Get(id string) (*models.Categorie, error)
	GetBySlug(slug string) (*models.Categorie, error)
	List() ([]models.Categorie, error)
}

type categorieService struct {
	categories repositories.CategorieRepository
}

func NewCategorieService(categories repositories.CategorieRepository) CategorieService {
	return &categorieService{categories: categories}
}

func (s *categorieService) Create(req *dto.CategorieRequest) (*models.Categorie, error) {
	exists, err := s.categories.NomExists(req.Nom, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(nil, "categorie", "A category with this name already exists")
	}

	categorie := &models.Categorie{
		Nom:             req.Nom,
		Description:     req.Description,
		MetaDescription: req.MetaDescription,
	}
	err = createWithUniqueSlug(s.categories, req.Nom, categorieSlugLen, func(categorieSlug string) error {
		categorie.Slug = categorieSlug
		return s.categories.Create(categorie)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Both nom and slug carry unique indexes; a concurrent
			// create of the same nom lands here after the check above.
			return nil, apperrors.ErrAlreadyExists(err, "categorie", "A category with this name already exists")
		}
		return nil, err
	}
	return categorie, nil
}

func (s *categorieService) Update(id string, req *dto.CategorieRequest) (*models.Categorie, error) {
	categorie, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	taken, err := s.categories.NomExists(req.Nom, categorie.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrAlreadyExists(nil, "categorie", "A category with this name already exists")
	}

	// The slug is immutable once assigned; renames keep old URLs alive.
	categorie.Nom = req.Nom
	categorie.Description = req.Description
	categorie.MetaDescription = req.MetaDescription

	if err := s.categories.Update(categorie); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyExists(err, "categorie", "A category with this name already exists")
		}
		return nil, err
	}
	return categorie, nil
}

func (s *categorieService) Delete(id string) error {
	if err := s.categories.Delete(id); err != nil {
		if err == repositories.ErrCategorieNotFound {
			return apperrors.ErrNotFound(err, "categorie")
		}
		return err
	}
	return nil
}

func (s *categorieService) Get(id string) (*models.Categorie, error) {
	categorie, err := s.categories.FindByID(id)
	if err != nil {
		if err == repositories.ErrCategorieNotFound {
			return nil, apperrors.ErrNotFound(err, "categorie")
		}
		return nil, err
	}
	return categorie, nil
}

func (s *categorieService) GetBySlug(slug string) (*models.Categorie, error) {
	categorie, err := s.categories.FindBySlug(slug)
	if err != nil {
		if err == repositories.ErrCategorieNotFound {
			return nil, apperrors.ErrNotFound(err, "categorie")
		}
		return nil, err
	}
	return categorie, nil
}

func (s *categorieService) List() ([]models.Categorie, error) {
	return s.categories.FindAll()
}
