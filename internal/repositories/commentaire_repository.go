package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrCommentaireNotFound = errors.New("commentaire not found")

type CommentaireFilter struct {
	ArticleID string
	Valide    *bool
	Search    string
	Page      int
	PageSize  int
}

type CommentaireRepository interface {
	Create(commentaire *models.Commentaire) error
	FindByID(viewer auth.Viewer, id string) (*models.Commentaire, error)
	FindWithFilter(viewer auth.Viewer, filter CommentaireFilter) ([]models.Commentaire, int64, error)
	FindThreadRoots(viewer auth.Viewer, articleID string) ([]models.Commentaire, error)
	MarkValide(id string) error
	Delete(id string) error
}

type CommentaireRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentaireRepository(db *gorm.DB) CommentaireRepository {
	return &CommentaireRepositoryImpl{db: db}
}

// visibleCommentaires mirrors auth.CanViewCommentaire: the public only
// sees moderated comments.
func visibleCommentaires(viewer auth.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if viewer.IsElevated() {
			return db
		}
		return db.Where("valide = ?", true)
	}
}

func (r *CommentaireRepositoryImpl) Create(commentaire *models.Commentaire) error {
	return r.db.Create(commentaire).Error
}

func (r *CommentaireRepositoryImpl) FindByID(viewer auth.Viewer, id string) (*models.Commentaire, error) {
	var commentaire models.Commentaire
	err := r.db.Scopes(visibleCommentaires(viewer)).First(&commentaire, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentaireNotFound
		}
		return nil, err
	}
	return &commentaire, nil
}

func (r *CommentaireRepositoryImpl) FindWithFilter(viewer auth.Viewer, filter CommentaireFilter) ([]models.Commentaire, int64, error) {
	query := r.db.Model(&models.Commentaire{}).Scopes(visibleCommentaires(viewer))

	if filter.ArticleID != "" {
		query = query.Where("article_id = ?", filter.ArticleID)
	}
	if filter.Valide != nil && viewer.IsElevated() {
		query = query.Where("valide = ?", *filter.Valide)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("auteur LIKE ? OR contenu LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var commentaires []models.Commentaire
	err := query.Order("created_at desc").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&commentaires).Error
	return commentaires, total, err
}

// FindThreadRoots loads every visible comment of the article in one
// query; the service assembles the reply tree in memory.
func (r *CommentaireRepositoryImpl) FindThreadRoots(viewer auth.Viewer, articleID string) ([]models.Commentaire, error) {
	var commentaires []models.Commentaire
	err := r.db.Scopes(visibleCommentaires(viewer)).
		Where("article_id = ?", articleID).
		Order("created_at desc").
		Find(&commentaires).Error
	return commentaires, err
}

func (r *CommentaireRepositoryImpl) MarkValide(id string) error {
	res := r.db.Model(&models.Commentaire{}).Where("id = ?", id).Update("valide", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentaireNotFound
	}
	return nil
}

func (r *CommentaireRepositoryImpl) Delete(id string) error {
	// Children are re-parented to nothing rather than deleted: moderation
	// removing one bad node should not vaporize a whole subthread.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Commentaire{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Commentaire{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCommentaireNotFound
		}
		return nil
	})
}
