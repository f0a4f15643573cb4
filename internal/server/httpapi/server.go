// Package httpapi exposes the identity and billing services over a JSON
// REST surface. Routing and middleware run on gin; all responses carry
// stable messages and never echo internal error text.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/resumecore/api/internal/logging"
	"github.com/resumecore/api/internal/server/auth"
	"github.com/resumecore/api/internal/server/config"
	"github.com/resumecore/api/internal/server/models"
)

// IdentityService is the slice of the user service the HTTP layer needs.
type IdentityService interface {
	Register(ctx context.Context, name, email, rawPassword string) (*models.UserView, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, rawPassword string) (*models.UserView, string, error)
	ResendVerification(ctx context.Context, email string) error
	GetProfile(ctx context.Context, principal auth.Principal) (*models.UserView, error)
}

// BillingService is the slice of the payment service the HTTP layer needs.
type BillingService interface {
	CreateOrder(ctx context.Context, principal auth.Principal, planType string) (*models.Payment, error)
	VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string) (bool, error)
	GetUserPayments(ctx context.Context, principal auth.Principal) ([]*models.Payment, error)
	GetPaymentDetails(ctx context.Context, principal auth.Principal, gatewayOrderID string) (*models.Payment, error)
}

// Server is the HTTP boundary.
type Server struct {
	addr      string
	jwtSecret []byte
	users     IdentityService
	payments  BillingService
	logger    logging.Logger

	engine *gin.Engine
	httpd  *http.Server
}

// NewServer wires routes and middleware. The returned server is started
// with Run and stopped with Shutdown.
func NewServer(cfg *config.Config, users IdentityService, payments BillingService, logger logging.Logger) *Server {
	s := &Server{
		addr:      cfg.EndpointAddr,
		jwtSecret: []byte(cfg.SecretKey),
		users:     users,
		payments:  payments,
		logger:    logger.With("module", "httpapi"),
	}
	s.engine = s.buildEngine()
	return s
}

func (s *Server) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	engine.GET("/health", s.health)

	authGroup := engine.Group("/api/auth")
	authGroup.POST("/register", s.register)
	authGroup.GET("/verify-email", s.verifyEmail)
	authGroup.POST("/login", s.login)
	authGroup.POST("/resend-verification", s.resendVerification)
	authGroup.GET("/profile", s.authRequired(), s.profile)

	paymentGroup := engine.Group("/api/payment", s.authRequired())
	paymentGroup.POST("/create-order", s.createOrder)
	paymentGroup.POST("/verify", s.verifyPayment)
	paymentGroup.GET("/history", s.paymentHistory)
	paymentGroup.GET("/order/:orderId", s.paymentDetails)

	return engine
}

// Handler exposes the routed engine, used by tests and by Run.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts serving and blocks until the listener fails or Shutdown is
// called.
func (s *Server) Run(ctx context.Context) error {
	s.httpd = &http.Server{Addr: s.addr, Handler: s.engine}
	s.logger.Info(ctx, "starting http server", "addr", s.addr)
	if err := s.httpd.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpd == nil {
		return nil
	}
	return s.httpd.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
