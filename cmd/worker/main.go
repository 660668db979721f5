package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puja_site_echo/internal/config"
	"puja_site_echo/internal/countdown"
	"puja_site_echo/internal/services"
)

func main() {
	cfg := config.Load()

	if cfg.RedisURL == "" {
		log.Fatal("REDIS_URL not set")
	}

	cache, err := services.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.Close()

	schedule := countdown.DefaultSchedule()

	log.Println("Countdown worker started")

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down worker...")
		cancel()
	}()

	ticker := time.NewTicker(countdown.RefreshInterval)
	defer ticker.Stop()

	// Warm the cache right away so the first page load does not compute it
	refreshCountdown(ctx, cache, schedule)

	for {
		select {
		case <-ticker.C:
			refreshCountdown(ctx, cache, schedule)
		case <-ctx.Done():
			return
		}
	}
}

func refreshCountdown(ctx context.Context, cache *services.RedisCache, schedule []countdown.Event) {
	snap := countdown.Compute(schedule, time.Now(), countdown.Dhaka)

	// Outlive one tick so readers never see a gap between refreshes
	if err := cache.Set(ctx, countdown.CacheKey, snap, 2*countdown.RefreshInterval); err != nil {
		log.Printf("Error caching countdown: %v", err)
		return
	}

	if snap.Found {
		log.Printf("Countdown refreshed: %s (%s)", snap.Name, snap.Countdown)
	} else {
		log.Println("Countdown refreshed: no upcoming event")
	}
}
