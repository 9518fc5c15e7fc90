package seed

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/server"
)

// Handler serves /api/seed.
type Handler struct {
	seeder *Seeder
}

// NewHandler creates a seed handler.
func NewHandler(seeder *Seeder) *Handler {
	return &Handler{seeder: seeder}
}

// Register mounts GET on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", func(c *gin.Context) {
		res, err := h.seeder.Run(c.Request.Context())
		if err != nil {
			server.RespondWithError(c, err)
			return
		}
		server.RespondOK(c, res)
	})
}
