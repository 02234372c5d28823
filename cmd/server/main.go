// Package main - Entry point for the roicheck server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"roicheck/api"
	"roicheck/core/roi"
	"roicheck/internal/config"
	"roicheck/internal/logging"
	"roicheck/render"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	addr := flag.String("addr", "", "server address (overrides config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	if *cfgPath == "" {
		*cfgPath = os.Getenv("ROICHECK_CONFIG")
	}
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if env := os.Getenv("ROICHECK_ADDR"); env != "" {
		listen = env
	}
	if *addr != "" {
		listen = *addr
	}

	calc, err := roi.NewCalculator(cfg.Calculator.Assumptions())
	if err != nil {
		logging.Fatal("invalid calculator assumptions", zap.Error(err))
	}

	apiServer := api.NewServer(version, calc)
	page := render.NewPageHandler(calc, cfg.Render.ProductName, cfg.Render.ContactEmail)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", page)

	fmt.Printf("🛡️  %s ROI Quick Check v%s\n", cfg.Render.ProductName, version)
	fmt.Printf("   UI:  http://localhost%s\n", listen)
	fmt.Printf("   API: http://localhost%s/api\n", listen)
	fmt.Println()

	logging.Info("server starting", zap.String("addr", listen))
	if err := http.ListenAndServe(listen, mux); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
