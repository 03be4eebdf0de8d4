package services

import (
	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

type CommentaireService interface {
	Create(viewer auth.Viewer, req *dto.CreateCommentaireRequest) (*models.Commentaire, error)
	Get(viewer auth.Viewer, id string) (*models.Commentaire, error)
	List(viewer auth.Viewer, query *dto.CommentaireListQuery, page, pageSize int) ([]models.Commentaire, int64, error)
	Valider(id string) (*models.Commentaire, error)
	Delete(id string) error
}

type commentaireService struct {
	commentaires repositories.CommentaireRepository
	articles     repositories.ArticleRepository
}

func NewCommentaireService(
	commentaires repositories.CommentaireRepository,
	articles repositories.ArticleRepository,
) CommentaireService {
	return &commentaireService{commentaires: commentaires, articles: articles}
}

func (s *commentaireService) Create(viewer auth.Viewer, req *dto.CreateCommentaireRequest) (*models.Commentaire, error) {
	// The target article must be visible to the commenter.
	if _, err := s.articles.FindByID(viewer, req.ArticleID); err != nil {
		if err == repositories.ErrArticleNotFound {
			return nil, apperrors.ErrNotFound(err, "article")
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentaires.FindByID(viewer, *req.ParentID)
		if err != nil {
			if err == repositories.ErrCommentaireNotFound {
				return nil, apperrors.ErrNotFound(err, "commentaire")
			}
			return nil, err
		}
		if parent.ArticleID != req.ArticleID {
			return nil, apperrors.ValidationError(map[string]string{
				"parent_id": "Parent comment belongs to another article",
			})
		}
	}

	commentaire := &models.Commentaire{
		ArticleID: req.ArticleID,
		Auteur:    req.Auteur,
		Contenu:   req.Contenu,
		ParentID:  req.ParentID,
		Valide:    false,
	}
	if !viewer.IsAnonymous() {
		userID := viewer.UserID
		commentaire.AuteurUserID = &userID
		if commentaire.Auteur == "" {
			commentaire.Auteur = viewer.Name
		}
	}
	if commentaire.Auteur == "" {
		commentaire.Auteur = "Anonyme"
	}

	if err := s.commentaires.Create(commentaire); err != nil {
		return nil, err
	}
	return commentaire, nil
}

func (s *commentaireService) Get(viewer auth.Viewer, id string) (*models.Commentaire, error) {
	commentaire, err := s.commentaires.FindByID(viewer, id)
	if err != nil {
		if err == repositories.ErrCommentaireNotFound {
			return nil, apperrors.ErrNotFound(err, "commentaire")
		}
		return nil, err
	}
	return commentaire, nil
}

func (s *commentaireService) List(viewer auth.Viewer, query *dto.CommentaireListQuery, page, pageSize int) ([]models.Commentaire, int64, error) {
	filter := repositories.CommentaireFilter{
		ArticleID: query.Article,
		Valide:    query.Valide,
		Search:    query.Search,
		Page:      page,
		PageSize:  pageSize,
	}
	return s.commentaires.FindWithFilter(viewer, filter)
}

func (s *commentaireService) Valider(id string) (*models.Commentaire, error) {
	if err := s.commentaires.MarkValide(id); err != nil {
		if err == repositories.ErrCommentaireNotFound {
			return nil, apperrors.ErrNotFound(err, "commentaire")
		}
		return nil, err
	}
	return s.Get(auth.System, id)
}

func (s *commentaireService) Delete(id string) error {
	if err := s.commentaires.Delete(id); err != nil {
		if err == repositories.ErrCommentaireNotFound {
			return apperrors.ErrNotFound(err, "commentaire")
		}
		return err
	}
	return nil
}
