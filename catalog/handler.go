package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/logger"
	"github.com/kbukum/storefront/server"
)

// Handler serves /api/products.
type Handler struct {
	repo *Repository
	log  *logger.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(repo *Repository, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log.WithComponent("catalog")}
}

// Register mounts the product routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/slug/:slug", h.bySlug)
	rg.GET("/:id", h.byID)
}

func (h *Handler) list(c *gin.Context) {
	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.WithContext(c.Request.Context()).Error("list products failed", logger.Fields(logger.FieldError, err.Error()))
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, products)
}

func (h *Handler) bySlug(c *gin.Context) {
	p, err := h.repo.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, p)
}

func (h *Handler) byID(c *gin.Context) {
	p, err := h.repo.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, p)
}
