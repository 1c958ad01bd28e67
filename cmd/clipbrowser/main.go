//go:build !js

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/conjunx/editor/internal/config"
	"github.com/conjunx/editor/internal/controller"
	"github.com/conjunx/editor/internal/display"
	"github.com/conjunx/editor/internal/fetcher"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {
	configPath := flag.String("config", "/etc/conjunx/clipbrowser.yaml", "path to config file")
	envPath := flag.String("env", ".env", "optional dotenv file read before the config")
	once := flag.Bool("once", false, "load the clip listing once and exit, ignoring the schedule")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to load %s: %v", *envPath, err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	page := controller.New(display.NewWriter(os.Stdout), fetcher.NewClip(httpClient, cfg.PageURL))

	load := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		if res := <-page.LoadContent(ctx); res.Err != nil {
			log.Printf("Failed to load %s from %s: %v", res.Name, cfg.PageURL, res.Err)
		}
	}

	if *once || cfg.Schedule == "" {
		load()
		return
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Schedule, load)
	if err != nil {
		log.Fatalf("Failed to add cron schedule %q: %v", cfg.Schedule, err)
	}
	c.Start()
	load()

	log.Printf("Clip browser started. Schedule: %s", cfg.Schedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	ctx := c.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		log.Println("Timed out waiting for running load")
	}
}
