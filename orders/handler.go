package orders

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/server"
	"github.com/kbukum/storefront/server/middleware"
)

// Handler serves /api/orders and /api/keys.
type Handler struct {
	svc *Service
	cfg Config
}

// NewHandler creates an orders handler.
func NewHandler(svc *Service, cfg Config) *Handler {
	cfg.ApplyDefaults()
	return &Handler{svc: svc, cfg: cfg}
}

// Register mounts the order routes on rg, all behind requireAuth.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.Use(requireAuth)
	rg.POST("", h.create)
	rg.GET("/mine", h.mine)
	rg.GET("/:id", h.get)
	rg.PUT("/:id/pay", h.pay)
}

// RegisterKeys mounts the payment provider key route on rg.
func (h *Handler) RegisterKeys(rg *gin.RouterGroup) {
	rg.GET("/paypal", func(c *gin.Context) {
		server.RespondOK(c, h.cfg.PayPalClientID)
	})
}

func (h *Handler) create(c *gin.Context) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	var req CreateRequest
	if !server.BindJSON(c, &req) {
		return
	}
	receipt, err := h.svc.Create(c.Request.Context(), claims.Identity, req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondCreated(c, receipt)
}

func (h *Handler) mine(c *gin.Context) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	orders, err := h.svc.Mine(c.Request.Context(), claims.Identity)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, orders)
}

func (h *Handler) get(c *gin.Context) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	order, err := h.svc.Get(c.Request.Context(), claims.Identity, c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, order)
}

func (h *Handler) pay(c *gin.Context) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	var req PayRequest
	if !server.BindJSON(c, &req) {
		return
	}
	receipt, err := h.svc.Pay(c.Request.Context(), claims.Identity, c.Param("id"), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, receipt)
}
