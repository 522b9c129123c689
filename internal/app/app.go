package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ibeloyar/hotelportal/internal/config"
	"github.com/ibeloyar/hotelportal/internal/hotelapi"
	"github.com/ibeloyar/hotelportal/internal/service"
	"github.com/ibeloyar/hotelportal/internal/stub"
	"github.com/ibeloyar/hotelportal/pgk/clock"
	"github.com/ibeloyar/hotelportal/pgk/httpclient"
	"github.com/ibeloyar/hotelportal/pgk/logger"
	"github.com/ibeloyar/hotelportal/pgk/password"
	"github.com/ibeloyar/hotelportal/pgk/session"
	"go.uber.org/zap"

	httpController "github.com/ibeloyar/hotelportal/internal/controller/http"
)

const shutdownTimeout = 5 * time.Second

// NewPortalRouter - роутер портала участника; release освобождает соединения к сервису отеля
func NewPortalRouter(cfg config.Config, lg *zap.SugaredLogger) (router *chi.Mux, release func()) {
	client := httpclient.New(httpclient.Config{Timeout: cfg.RequestTimeout})

	factory := func(sess session.Session) service.API {
		return hotelapi.New(hotelapi.Config{BaseURL: cfg.APIURL, HTTPClient: client}, sess)
	}

	s := service.New(factory, clock.NewRealClock(), cfg.OrdersPageSize, lg)
	handlers := httpController.New(s, lg, session.CookieConfig{
		Domain: cfg.CookieDomain,
		Secure: cfg.CookieSecure,
	})

	router = chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	router = httpController.InitRoutes(router, handlers)

	return router, client.CloseIdleConnections
}

// NewStubRouter - роутер локального сервиса отеля с засеянными данными
func NewStubRouter(cfg config.StubConfig, lg *zap.SugaredLogger) (*chi.Mux, error) {
	c := clock.NewRealClock()
	hasher := password.NewHasher(cfg.PassCost)
	store := stub.NewStore()

	demoHash := ""
	if cfg.SeedDemo {
		hash, err := hasher.Hash(stub.DemoPassword)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		demoHash = hash
	}

	if err := stub.Seed(store, demoHash, c.Now()); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	if cfg.SeedDemo {
		lg.Infof("demo member: %s / %s", stub.DemoEmail, stub.DemoPassword)
	}

	srv := stub.NewServer(store, hasher, c, stub.Config{
		SecretKey:     cfg.SecretKey,
		TokenLifetime: cfg.TokenLifetime,
	}, lg)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(logger.LoggingMiddleware(lg))
	router.Use(middleware.Recoverer)

	return srv.InitRoutes(router), nil
}

func Run(cfg config.Config, lg *zap.SugaredLogger) error {
	router, closeClient := NewPortalRouter(cfg, lg)
	defer closeClient()

	return serve(cfg.RunAddress, router, lg)
}

func RunStub(cfg config.StubConfig, lg *zap.SugaredLogger) error {
	router, err := NewStubRouter(cfg, lg)
	if err != nil {
		return err
	}

	return serve(cfg.RunAddress, router, lg)
}

func serve(addr string, handler http.Handler, lg *zap.SugaredLogger) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Infof("starting server on %s", addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalf("server ListenAndServe error: %v", err)
		}
	}()

	<-signalCtx.Done()
	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown (server) error: %v", err)
	}

	lg.Info("server shutdown success")
	return nil
}
