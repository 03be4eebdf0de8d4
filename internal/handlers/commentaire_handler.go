package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amsa221/softskills-project/internal/middleware"
	"github.com/Amsa221/softskills-project/internal/services"
	"github.com/Amsa221/softskills-project/internal/services/dto"
)

type CommentaireHandler struct {
	*BaseHandler
	commentaireService services.CommentaireService
}

func NewCommentaireHandler(base *BaseHandler, commentaireService services.CommentaireService) *CommentaireHandler {
	return &CommentaireHandler{
		BaseHandler:        base,
		commentaireService: commentaireService,
	}
}

func (h *CommentaireHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Anyone may comment; anonymous comments carry only the free-text
	// author label.
	public := r.Group("/commentaires")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.POST("", h.Create)
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	moderation := r.Group("/commentaires")
	moderation.Use(middleware.AuthMiddleware(), middleware.RequireElevated())
	{
		moderation.PATCH("/:id/valider", h.Valider)
		moderation.DELETE("/:id", h.Delete)
	}
}

func (h *CommentaireHandler) Create(c *gin.Context) {
	var req dto.CreateCommentaireRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	viewer := middleware.GetViewer(c)
	commentaire, err := h.commentaireService.Create(viewer, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentaire)
}

func (h *CommentaireHandler) List(c *gin.Context) {
	var query dto.CommentaireListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	page, pageSize := ParsePagination(c)

	viewer := middleware.GetViewer(c)
	commentaires, total, err := h.commentaireService.List(viewer, &query, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commentaires": commentaires,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}

func (h *CommentaireHandler) Get(c *gin.Context) {
	viewer := middleware.GetViewer(c)
	commentaire, err := h.commentaireService.Get(viewer, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentaire)
}

func (h *CommentaireHandler) Valider(c *gin.Context) {
	commentaire, err := h.commentaireService.Valider(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, commentaire)
}

func (h *CommentaireHandler) Delete(c *gin.Context) {
	if err := h.commentaireService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
