package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/repositories"
	"github.com/Amsa221/softskills-project/internal/services/dto"
	"github.com/Amsa221/softskills-project/pkg/apperrors"
)

const articleSlugLen = 280

type ArticleService interface {
	Create(viewer auth.Viewer, req *dto.CreateArticleRequest) (*models.Article, error)
	Update(viewer auth.Viewer, id string, req *dto.UpdateArticleRequest) (*models.Article, error)
	Delete(viewer auth.Viewer, id string) error
	Get(viewer auth.Viewer, id string) (*dto.ArticleDetail, error)
	GetBySlug(viewer auth.Viewer, slug string) (*dto.ArticleDetail, error)
	List(viewer auth.Viewer, query *dto.ArticleListQuery, page, pageSize int) ([]dto.ArticleListItem, int64, error)
}

type articleService struct {
	articles     repositories.ArticleRepository
	categories   repositories.CategorieRepository
	tags         repositories.TagRepository
	commentaires repositories.CommentaireRepository
}

func NewArticleService(
	articles repositories.ArticleRepository,
	categories repositories.CategorieRepository,
	tags repositories.TagRepository,
	commentaires repositories.CommentaireRepository,
) ArticleService {
	return &articleService{
		articles:     articles,
		categories:   categories,
		tags:         tags,
		commentaires: commentaires,
	}
}

func (s *articleService) Create(viewer auth.Viewer, req *dto.CreateArticleRequest) (*models.Article, error) {
	if req.CategorieID != nil {
		if _, err := s.categories.FindByID(*req.CategorieID); err != nil {
			if err == repositories.ErrCategorieNotFound {
				return nil, apperrors.ValidationError(map[string]string{"categorie_id": "Unknown category"})
			}
			return nil, err
		}
	}

	statut := models.ArticleStatutDraft
	if req.Statut != "" {
		statut = models.ArticleStatut(req.Statut)
	}

	auteurID := viewer.UserID
	article := &models.Article{
		Titre:           req.Titre,
		Contenu:         req.Contenu,
		Image:           req.Image,
		CategorieID:     req.CategorieID,
		AuteurID:        &auteurID,
		AuteurNom:       viewer.Name,
		Statut:          statut,
		MetaDescription: req.MetaDescription,
		MotsCles:        req.MotsCles,
	}

	if len(req.Tags) > 0 {
		tags, err := s.tags.FindOrCreateByNames(req.Tags)
		if err != nil {
			return nil, err
		}
		article.Tags = tags
	}

	err := createWithUniqueSlug(s.articles, req.Titre, articleSlugLen, func(articleSlug string) error {
		article.Slug = articleSlug
		return s.articles.Create(article)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict("article", "Could not assign a unique slug, please retry")
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) Update(viewer auth.Viewer, id string, req *dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.loadForWrite(viewer, id)
	if err != nil {
		return nil, err
	}

	if req.CategorieID != nil {
		if _, err := s.categories.FindByID(*req.CategorieID); err != nil {
			if err == repositories.ErrCategorieNotFound {
				return nil, apperrors.ValidationError(map[string]string{"categorie_id": "Unknown category"})
			}
			return nil, err
		}
		article.CategorieID = req.CategorieID
	}
	if req.Titre != nil {
		// The slug stays as assigned at creation.
		article.Titre = *req.Titre
	}
	if req.Contenu != nil {
		article.Contenu = *req.Contenu
	}
	if req.Image != nil {
		article.Image = *req.Image
	}
	if req.Statut != nil {
		article.Statut = models.ArticleStatut(*req.Statut)
	}
	if req.MetaDescription != nil {
		article.MetaDescription = *req.MetaDescription
	}
	if req.MotsCles != nil {
		article.MotsCles = *req.MotsCles
	}

	if err := s.articles.Update(article); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		tags, err := s.tags.FindOrCreateByNames(req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.articles.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
		article.Tags = tags
	}

	return article, nil
}

func (s *articleService) Delete(viewer auth.Viewer, id string) error {
	if _, err := s.loadForWrite(viewer, id); err != nil {
		return err
	}
	if err := s.articles.Delete(id); err != nil {
		if err == repositories.ErrArticleNotFound {
			return apperrors.ErrNotFound(err, "article")
		}
		return err
	}
	return nil
}

// loadForWrite fetches without the visibility scope, then decides
// between 403 and 404: a viewer who could not even read the article
// learns nothing about its existence.
func (s *articleService) loadForWrite(viewer auth.Viewer, id string) (*models.Article, error) {
	article, err := s.articles.FindByID(auth.System, id)
	if err != nil {
		if err == repositories.ErrArticleNotFound {
			return nil, apperrors.ErrNotFound(err, "article")
		}
		return nil, err
	}

	isAuthor := article.AuteurID != nil && *article.AuteurID == viewer.UserID && !viewer.IsAnonymous()
	if viewer.IsElevated() || isAuthor {
		return article, nil
	}
	if auth.CanViewArticle(viewer, article) {
		return nil, apperrors.NewForbiddenError("Only the author or staff may modify this article")
	}
	return nil, apperrors.ErrNotFound(repositories.ErrArticleNotFound, "article")
}

func (s *articleService) Get(viewer auth.Viewer, id string) (*dto.ArticleDetail, error) {
	article, err := s.articles.FindByID(viewer, id)
	if err != nil {
		if err == repositories.ErrArticleNotFound {
			return nil, apperrors.ErrNotFound(err, "article")
		}
		return nil, err
	}
	return s.buildDetail(viewer, article)
}

func (s *articleService) GetBySlug(viewer auth.Viewer, slug string) (*dto.ArticleDetail, error) {
	article, err := s.articles.FindBySlug(viewer, slug)
	if err != nil {
		if err == repositories.ErrArticleNotFound {
			return nil, apperrors.ErrNotFound(err, "article")
		}
		return nil, err
	}
	return s.buildDetail(viewer, article)
}

func (s *articleService) buildDetail(viewer auth.Viewer, article *models.Article) (*dto.ArticleDetail, error) {
	commentaires, err := s.commentaires.FindThreadRoots(viewer, article.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ArticleDetail{
		ArticleListItem: dto.NewArticleListItem(article),
		Contenu:         article.Contenu,
		UpdatedAt:       article.UpdatedAt,
		Commentaires:    dto.BuildCommentaireThread(commentaires),
	}, nil
}

func (s *articleService) List(viewer auth.Viewer, query *dto.ArticleListQuery, page, pageSize int) ([]dto.ArticleListItem, int64, error) {
	filter := repositories.ArticleFilter{
		CategorieSlug: query.Categorie,
		Statut:        models.ArticleStatut(query.Statut),
		Search:        query.Search,
		Page:          page,
		PageSize:      pageSize,
	}

	articles, total, err := s.articles.FindWithFilter(viewer, filter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]dto.ArticleListItem, 0, len(articles))
	for i := range articles {
		items = append(items, dto.NewArticleListItem(&articles[i]))
	}
	return items, total, nil
}
