package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Amsa221/softskills-project/internal/middleware"
	"github.com/Amsa221/softskills-project/internal/models"
	"github.com/Amsa221/softskills-project/internal/services"
	"github.com/Amsa221/softskills-project/internal/services/dto"
)

type CategorieHandler struct {
	*BaseHandler
	categorieService services.CategorieService
}

func NewCategorieHandler(base *BaseHandler, categorieService services.CategorieService) *CategorieHandler {
	return &CategorieHandler{
		BaseHandler:      base,
		categorieService: categorieService,
	}
}

func (h *CategorieHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/categories")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	protected := r.Group("/categories")
	protected.Use(middleware.AuthMiddleware(), middleware.RequireElevated())
	{
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

func (h *CategorieHandler) List(c *gin.Context) {
	categories, err := h.categorieService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get accepts either the record id or the public slug.
func (h *CategorieHandler) Get(c *gin.Context) {
	key := c.Param("id")

	var categorie *models.Categorie
	var err error
	if uuid.Validate(key) == nil {
		categorie, err = h.categorieService.Get(key)
	} else {
		categorie, err = h.categorieService.GetBySlug(key)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorie)
}

func (h *CategorieHandler) Create(c *gin.Context) {
	var req dto.CategorieRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	categorie, err := h.categorieService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categorie)
}

func (h *CategorieHandler) Update(c *gin.Context) {
	var req dto.CategorieRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	categorie, err := h.categorieService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categorie)
}

func (h *CategorieHandler) Delete(c *gin.Context) {
	if err := h.categorieService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
