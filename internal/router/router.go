// Package router wires the HTTP surface. Handlers here are thin: they
// resolve the caller's session, delegate to the owning store or service,
// and translate sentinel errors to status codes. Nothing below this
// package imports gin.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nguyentuanlin/PROJECTMOBILE/internal/admin"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/auth"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/catalog"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/checkout"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/events"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/middleware"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/payment"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/session"
	"github.com/nguyentuanlin/PROJECTMOBILE/internal/stores"
)

// Deps collects every collaborator the HTTP layer needs.
type Deps struct {
	Auth       *auth.Service
	Tokens     *auth.Tokens
	Catalog    *catalog.Service
	Sessions   *session.Manager
	Authorizer payment.Authorizer
	Publisher  events.Publisher
	Sales      *admin.Service
	Shops      *stores.Service
	Logger     *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := auth.NewHandler(d.Auth, d.Tokens)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	catalogHandler := catalog.NewHandler(d.Catalog)
	r.GET("/products", catalogHandler.List)

	shopHandler := stores.NewHandler(d.Shops)
	r.GET("/shops", shopHandler.List)
	r.GET("/shops/nearest", shopHandler.Nearest)

	sh := &sessionHandler{deps: d}

	user := r.Group("/")
	user.Use(middleware.AuthMiddleware(d.Tokens))
	{
		user.GET("/cart", sh.GetCart)
		user.POST("/cart/items", sh.AddItem)
		user.PATCH("/cart/items/:id", sh.SetQuantity)
		user.DELETE("/cart/items/:id", sh.RemoveItem)

		user.POST("/checkout", sh.Checkout)

		user.GET("/orders", sh.Orders)

		user.GET("/loyalty", sh.Loyalty)
		user.POST("/loyalty/redeem", sh.Redeem)
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(d.Tokens), middleware.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/sales", admin.NewHandler(d.Sales).Sales)
		adminGroup.POST("/products/:id/image", catalog.NewAdminHandler(d.Catalog).UploadImage)
	}

	return r
}

// sessionHandler serves the routes that operate on the caller's own
// cart, orders and loyalty card.
type sessionHandler struct {
	deps Deps
}

// currentSession resolves the session of the authenticated caller.
func (h *sessionHandler) currentSession(c *gin.Context) (*session.Session, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, false
	}

	s, err := h.deps.Sessions.Get(c.Request.Context(), userID)
	if err != nil {
		h.deps.Logger.Error("failed to load session",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return nil, false
	}
	return s, true
}

// persist snapshots the session after a mutation. Durability is
// best-effort; the in-memory state is already correct.
func (h *sessionHandler) persist(c *gin.Context, s *session.Session) {
	if err := h.deps.Sessions.Save(c.Request.Context(), s); err != nil {
		h.deps.Logger.Error("failed to persist session",
			zap.String("user_id", s.UserID),
			zap.Error(err))
	}
}

// newCoordinator assembles the checkout protocol for one session.
func (h *sessionHandler) newCoordinator(s *session.Session) *checkout.Coordinator {
	return checkout.NewCoordinator(
		s.UserID,
		s.Cart,
		s.History,
		s.Ledger,
		h.deps.Authorizer,
		h.deps.Publisher,
		h.deps.Sales,
		h.deps.Logger,
	)
}
