package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

type TagRepository interface {
	FindAll() ([]models.Tag, error)
	// FindOrCreateByNames resolves tag names to rows, creating the
	// missing ones. Names are normalized to lowercase.
	FindOrCreateByNames(names []string) ([]models.Tag, error)
	Delete(id string) error
}

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("nom asc").Find(&tags).Error
	return tags, err
}

func (r *TagRepositoryImpl) FindOrCreateByNames(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		nom := strings.ToLower(strings.TrimSpace(name))
		if nom == "" || seen[nom] {
			continue
		}
		seen[nom] = true

		var tag models.Tag
		err := r.db.Where(models.Tag{Nom: nom}).FirstOrCreate(&tag, models.Tag{Nom: nom}).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *TagRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Tag{}, "id = ?", id).Error
}
