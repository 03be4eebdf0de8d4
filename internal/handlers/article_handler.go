package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Amsa221/softskills-project/internal/middleware"
	"github.com/Amsa221/softskills-project/internal/services"
	"github.com/Amsa221/softskills-project/internal/services/dto"
)

type ArticleHandler struct {
	*BaseHandler
	articleService services.ArticleService
}

func NewArticleHandler(base *BaseHandler, articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    base,
		articleService: articleService,
	}
}

func (h *ArticleHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Reads accept an optional token: staff sees drafts, everyone else
	// only published articles.
	public := r.Group("/articles")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	protected := r.Group("/articles")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *ArticleHandler) List(c *gin.Context) {
	var query dto.ArticleListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	viewer := middleware.GetViewer(c)
	articles, total, err := h.articleService.List(viewer, &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":  articles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Get accepts either the record id or the public slug. The two live in
// disjoint namespaces, a slug is never a valid UUID.
func (h *ArticleHandler) Get(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	key := c.Param("id")

	var article *dto.ArticleDetail
	var err error
	if uuid.Validate(key) == nil {
		article, err = h.articleService.Get(viewer, key)
	} else {
		article, err = h.articleService.GetBySlug(viewer, key)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	viewer := middleware.GetViewer(c)
	article, err := h.articleService.Create(viewer, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var req dto.UpdateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	viewer := middleware.GetViewer(c)
	article, err := h.articleService.Update(viewer, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	if err := h.articleService.Delete(viewer, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
