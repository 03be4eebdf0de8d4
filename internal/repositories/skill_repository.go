package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Create(skill *models.SoftSkill) error
	Update(skill *models.SoftSkill) error
	Delete(id string) error
	FindByID(id string) (*models.SoftSkill, error)
	FindAll() ([]models.SoftSkill, error)
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) Create(skill *models.SoftSkill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepositoryImpl) Update(skill *models.SoftSkill) error {
	return r.db.Save(skill).Error
}

func (r *SkillRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.SoftSkill{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) FindByID(id string) (*models.SoftSkill, error) {
	var skill models.SoftSkill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) FindAll() ([]models.SoftSkill, error) {
	var skills []models.SoftSkill
	err := r.db.Order("nom asc").Find(&skills).Error
	return skills, err
}
