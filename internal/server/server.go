package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	accountdomain "github.com/basssoft/arms/internal/account/domain"
	"github.com/basssoft/arms/internal/auth"
	bookingdomain "github.com/basssoft/arms/internal/booking/domain"
	"github.com/basssoft/arms/internal/config"
	invoicedomain "github.com/basssoft/arms/internal/invoice/domain"
	"github.com/basssoft/arms/internal/invoice/factory"
)

type Server struct {
	cfg *config.Config
	log *zap.Logger

	accountsvc accountdomain.Service
	bookingsvc bookingdomain.Service
	invoicesvc invoicedomain.Service
	factory    *factory.Factory
	authsvc    *auth.Service
	tokens     *auth.TokenService
}

type Params struct {
	fx.In

	Cfg        *config.Config
	Log        *zap.Logger
	AccountSvc accountdomain.Service
	BookingSvc bookingdomain.Service
	InvoiceSvc invoicedomain.Service
	Factory    *factory.Factory
	AuthSvc    *auth.Service
	Tokens     *auth.TokenService
}

func New(p Params) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		accountsvc: p.AccountSvc,
		bookingsvc: p.BookingSvc,
		invoicesvc: p.InvoiceSvc,
		factory:    p.Factory,
		authsvc:    p.AuthSvc,
		tokens:     p.Tokens,
	}
}

func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.cfg.MetricsEnabled {
		registerMetricsRoute(r)
	}

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", s.Login)
		authGroup.POST("/refresh", s.RefreshTokens)
	}

	// account creation is open; everything else needs a token
	api.POST("/accounts", s.CreateAccount)

	protected := api.Group("")
	protected.Use(auth.RequireAuth(s.tokens))
	{
		protected.GET("/accounts", s.ListAccounts)
		protected.GET("/accounts/:id", s.GetAccount)
		protected.PUT("/accounts/:id", s.UpdateAccount)
		protected.DELETE("/accounts/:id", s.DeleteAccount)

		protected.POST("/bookings", s.CreateBooking)
		protected.GET("/bookings", s.ListBookings)
		protected.GET("/bookings/:id", s.GetBooking)
		protected.PUT("/bookings/:id", s.UpdateBooking)
		protected.DELETE("/bookings/:id", s.DeleteBooking)

		protected.GET("/invoices", s.ListInvoices)
		protected.GET("/invoices/:id", s.GetInvoice)
		protected.PUT("/invoices/:id", s.UpdateInvoice)
		protected.DELETE("/invoices/:id", s.DeleteInvoice)

		providerOnly := protected.Group("/invoice-factory")
		providerOnly.Use(auth.RequireProvider())
		{
			providerOnly.GET("/generate", s.GenerateInvoice)
			providerOnly.GET("/generate-all", s.GenerateAllInvoices)
		}
	}

	return r
}

var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				s.log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
