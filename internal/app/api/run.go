package api

import (
	"context"
	"strconv"

	"restaurant-deluxe/internal/common/httpx"
	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/config"
	"restaurant-deluxe/internal/connections/database"
	"restaurant-deluxe/internal/connections/rabbitmq"
	"restaurant-deluxe/internal/dispatcher"
	"restaurant-deluxe/internal/orders/repository"
	"restaurant-deluxe/internal/orders/service"
)

// Run wires the API service: Postgres store, optional broker, lifecycle
// engine, dispatcher, HTTP server. The broker being down degrades to no
// notifications instead of refusing to start; orders still flow.
func Run(ctx context.Context, cfg *config.Config, port int) error {
	lg := logger.New("api")

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := repository.NewPGStore(pool)
	if err := store.Init(ctx); err != nil {
		return err
	}

	var pub service.EventPublisher
	if mq, err := rabbitmq.Dial(cfg.RabbitMQ); err != nil {
		lg.Error("rabbitmq_unavailable", err, map[string]any{"degraded": true})
	} else {
		defer mq.Close()
		pub = mq
	}

	svc := service.NewOrderService(store, pub)
	router := dispatcher.NewRouter(dispatcher.New(svc))

	lg.Info("service_started", map[string]any{"port": port})
	srv := httpx.New(":"+strconv.Itoa(port), router)
	return srv.Run(ctx)
}
