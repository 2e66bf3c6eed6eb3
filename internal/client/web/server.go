package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/config"
	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/logging"
)

type Server struct {
	dash   *services.Dashboard
	cfg    *config.Config
	log    logging.Logger
	engine *gin.Engine
}

func NewServer(dash *services.Dashboard, cfg *config.Config, log logging.Logger) *Server {
	s := &Server{dash: dash, cfg: cfg, log: log.With("component", "web")}
	s.engine = s.routes()
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logging(s.log), Recovery(s.log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", client.RequestIDHeader},
		ExposeHeaders:    []string{client.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(ProvideAuth(s.dash.Auth))

	r.GET(guard.RouteRoot, Guard(guard.Root))
	r.GET("/session", s.sessionState)
	r.GET(guard.RouteSignIn, Guard(guard.Guest), s.page("signin"))
	r.GET(guard.RouteSignUp, Guard(guard.Guest), s.page("signup"))
	r.POST(guard.RouteSignIn, s.signIn)
	r.POST(guard.RouteSignUp, s.signUp)
	r.POST("/signout", s.signOut)

	member := r.Group("/", RequireSession())
	{
		member.GET("home", s.home)
		member.PUT("profile", s.updateProfile)
		member.GET("wallet", s.wallet)
		member.GET("transactions", s.transactions)
		member.GET("deposits", s.deposits)
		member.POST("deposits", s.createDeposit)
		member.GET("income", s.income)
		member.GET("mining-packages", s.packages)
		member.GET("support-tickets", s.tickets)
		member.POST("support-tickets", s.createTicket)
	}

	admin := r.Group("/admin", RequireAdmin())
	{
		admin.GET("/home", s.adminHome)
		admin.GET("/users", s.users)
		admin.GET("/deposits", s.adminDeposits)
		admin.POST("/deposits/:id/confirm", s.confirmDeposit)
		admin.POST("/mining-packages", s.createPackage)
		admin.PUT("/mining-packages/:id", s.updatePackage)
		admin.DELETE("/mining-packages/:id", s.deletePackage)
		admin.GET("/support-tickets", s.adminTickets)
		admin.POST("/support-tickets/:id/close", s.closeTicket)
		admin.GET("/income", s.adminIncome)
	}

	return r
}

// Run restores the saved session in the background and serves until ctx is
// cancelled. Requests that arrive before the restore finishes see the
// loading state.
func (s *Server) Run(ctx context.Context, addr string) error {
	go func() {
		if err := s.dash.Auth.Hydrate(ctx); err != nil {
			s.log.Warn(ctx, "previous session could not be restored", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "gateway listening", "addr", addr, "backend", s.cfg.BackendURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info(ctx, "gateway shutting down")
	return srv.Shutdown(shutdownCtx)
}
