package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-deluxe/internal/app/api"
	"restaurant-deluxe/internal/app/staffpanel"
	"restaurant-deluxe/internal/common/logger"
	"restaurant-deluxe/internal/config"
	"restaurant-deluxe/internal/notify"
)

func main() {
	mode := flag.String("mode", "", "api | staff-panel | notification-subscriber")
	port := flag.Int("port", 0, "http port for the api mode")
	apiURL := flag.String("api-url", "http://localhost:3000", "staff-panel: base URL of the api service")
	interval := flag.Int("interval", 15, "staff-panel: poll interval seconds")
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "api":
		cfg := loadConfig(lg, *configPath)
		if *port == 0 {
			*port = cfg.HTTP.Port
		}
		if *port == 0 {
			*port = 3000
		}
		lg.Info("service_started", map[string]any{"service": "api", "port": *port})
		if err := api.Run(ctx, cfg, *port); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "staff-panel":
		lg.Info("service_started", map[string]any{"service": "staff-panel", "api_url": *apiURL})
		if err := staffpanel.Run(ctx, *apiURL, time.Duration(*interval)*time.Second); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-subscriber":
		cfg := loadConfig(lg, *configPath)
		lg.Info("service_started", map[string]any{"service": "notification-subscriber"})
		if err := notify.Run(ctx, cfg.RabbitMQ); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: api | staff-panel | notification-subscriber")
		os.Exit(2)
	}
}

func loadConfig(lg *logger.Logger, path string) *config.Config {
	if path == "" {
		var err error
		if path, err = config.FindConfig(); err != nil {
			fmt.Fprintln(os.Stderr, "no config.yaml found; pass --config")
			os.Exit(2)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		lg.Error("config_load_failed", err, map[string]any{"path": path})
		os.Exit(1)
	}
	return cfg
}
