package identity

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/storefront/server"
	"github.com/kbukum/storefront/server/middleware"
)

// Handler serves /api/users.
type Handler struct {
	svc *Service
}

// NewHandler creates a users handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the user routes on rg. requireAuth guards the profile
// route; limit, when non-nil, is applied to sign-in and sign-up.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth, limit gin.HandlerFunc) {
	if limit != nil {
		rg.POST("/signin", limit, h.signIn)
		rg.POST("/signup", limit, h.signUp)
	} else {
		rg.POST("/signin", h.signIn)
		rg.POST("/signup", h.signUp)
	}
	rg.PUT("/profile", requireAuth, h.updateProfile)
}

func (h *Handler) signIn(c *gin.Context) {
	var req SignInRequest
	if !server.BindJSON(c, &req) {
		return
	}
	session, err := h.svc.SignIn(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, session)
}

func (h *Handler) signUp(c *gin.Context) {
	var req SignUpRequest
	if !server.BindJSON(c, &req) {
		return
	}
	session, err := h.svc.SignUp(c.Request.Context(), req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, session)
}

func (h *Handler) updateProfile(c *gin.Context) {
	claims, err := middleware.CurrentClaims(c)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	var req ProfileRequest
	if !server.BindJSON(c, &req) {
		return
	}
	session, err := h.svc.UpdateProfile(c.Request.Context(), claims.Identity.ID, req)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, session)
}
