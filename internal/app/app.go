// Package app wires the gateway's components into a single HTTP handler.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/bank"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/handler/middleware"
	"github.com/DanielPopoola/card-payment-gateway/internal/adapters/memory"
	"github.com/DanielPopoola/card-payment-gateway/internal/api"
	"github.com/DanielPopoola/card-payment-gateway/internal/config"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/ports"
	"github.com/DanielPopoola/card-payment-gateway/internal/core/service"
	"github.com/DanielPopoola/card-payment-gateway/internal/observability"
)

type App struct {
	Handler    http.Handler
	Repository *memory.PaymentRepository
	Metrics    *observability.Metrics
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	doc, err := api.LoadSpec(ctx)
	if err != nil {
		return nil, err
	}

	paymentRepo := memory.NewPaymentRepository()
	bankClient := bank.NewBankClient(cfg.BankClient, logger)

	opts := []service.Option{service.WithLogger(logger)}
	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics(cfg.Metrics.Namespace)
		opts = append(opts, service.WithMetrics(metrics))
	} else {
		opts = append(opts, service.WithMetrics(ports.NopMetrics{}))
	}

	paymentService := service.NewPaymentService(paymentRepo, bankClient, opts...)

	mux := http.NewServeMux()
	handler.NewPaymentHandler(paymentService, logger).RegisterRoutes(mux)
	if err := api.RegisterDocsRoutes(mux, doc); err != nil {
		return nil, err
	}

	router := http.Handler(mux)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
		router = middleware.Metrics(metrics)(router)
	}

	h := middleware.Chain(router,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)

	return &App{
		Handler:    h,
		Repository: paymentRepo,
		Metrics:    metrics,
	}, nil
}
