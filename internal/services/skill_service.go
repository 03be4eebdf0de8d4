package services

import (
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

type SkillService interface {
	Create(req *dto.SkillRequest) (*models.SoftSkill, error)
	Update(id string, req *dto.SkillRequest) (*models.SoftSkill, error)
	Delete(id string) error
	Get(id string) (*models.SoftSkill, error)
	List() ([]models.SoftSkill, error)
}

type skillService struct {
	skills repositories.SkillRepository
}

func NewSkillService(skills repositories.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

func (s *skillService) Create(req *dto.SkillRequest) (*models.SoftSkill, error) {
	skill := &models.SoftSkill{
		Nom:         req.Nom,
		Description: req.Description,
	}
	if err := s.skills.Create(skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) Update(id string, req *dto.SkillRequest) (*models.SoftSkill, error) {
	skill, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	skill.Nom = req.Nom
	skill.Description = req.Description
	if err := s.skills.Update(skill); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) Delete(id string) error {
	if err := s.skills.Delete(id); err != nil {
		if err == repositories.ErrSkillNotFound {
			return apperrors.ErrNotFound(err, "skill")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *skillService) Get(id string) (*models.SoftSkill, error) {
	skill, err := s.skills.FindByID(id)
	if err != nil {
		if err == repositories.ErrSkillNotFound {
			return nil, apperrors.ErrNotFound(err, "skill")
		}
		return nil, apperrors.InternalError(err)
	}
	return skill, nil
}

func (s *skillService) List() ([]models.SoftSkill, error) {
	return s.skills.FindAll()
}
