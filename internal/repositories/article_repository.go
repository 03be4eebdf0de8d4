package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Amsa221/softskills-project/internal/auth"
	"github.com/Amsa221/softskills-project/internal/models"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleFilter holds the simple equality/substring predicates exposed
// by the list endpoint.
type ArticleFilter struct {
	CategorieSlug string
	Statut        models.ArticleStatut
	Search        string
	Page          int
	PageSize      int
}

type ArticleRepository interface {
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id string) error
	FindByID(viewer auth.Viewer, id string) (*models.Article, error)
	FindBySlug(viewer auth.Viewer, slug string) (*models.Article, error)
	FindWithFilter(viewer auth.Viewer, filter ArticleFilter) ([]models.Article, int64, error)
	SlugExists(slug string) (bool, error)
	ReplaceTags(article *models.Article, tags []models.Tag) error
}

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

// visibleArticles mirrors auth.CanViewArticle as a query scope: everyone
// sees published, elevated viewers also see drafts.
func visibleArticles(viewer auth.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if viewer.IsElevated() {
			return db
		}
		return db.Where("statut = ?", models.ArticleStatutPublished)
	}
}

func (r *ArticleRepositoryImpl) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepositoryImpl) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepositoryImpl) Delete(id string) error {
	// Comments go down with their article.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Commentaire{}, "article_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Select("Tags").Delete(&models.Article{BaseModel: models.BaseModel{ID: id}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrArticleNotFound
		}
		return nil
	})
}

func (r *ArticleRepositoryImpl) FindByID(viewer auth.Viewer, id string) (*models.Article, error) {
	return r.findOne(viewer, "id = ?", id)
}

func (r *ArticleRepositoryImpl) FindBySlug(viewer auth.Viewer, slug string) (*models.Article, error) {
	return r.findOne(viewer, "slug = ?", slug)
}

func (r *ArticleRepositoryImpl) findOne(viewer auth.Viewer, query string, arg interface{}) (*models.Article, error) {
	var article models.Article
	err := r.db.Scopes(visibleArticles(viewer)).
		Preload("Categorie").Preload("Tags").
		First(&article, query, arg).Error
	if err != nil {
		// A draft hidden from this viewer answers exactly like a row
		// that does not exist.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) FindWithFilter(viewer auth.Viewer, filter ArticleFilter) ([]models.Article, int64, error) {
	query := r.db.Model(&models.Article{}).Scopes(visibleArticles(viewer))

	if filter.CategorieSlug != "" {
		query = query.Joins("JOIN categories ON categories.id = articles.categorie_id").
			Where("categories.slug = ?", filter.CategorieSlug)
	}
	if filter.Statut != "" && viewer.IsElevated() {
		query = query.Where("articles.statut = ?", filter.Statut)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"articles.titre LIKE ? OR articles.contenu LIKE ? OR articles.meta_description LIKE ? OR articles.mots_cles LIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := query.Preload("Categorie").Preload("Tags").
		Order("articles.created_at desc").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&articles).Error
	return articles, total, err
}

func (r *ArticleRepositoryImpl) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *ArticleRepositoryImpl) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}
