package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"askbot/internal/asker"
	"askbot/internal/config"
	"askbot/internal/discord"
	"askbot/internal/storage"
	v "askbot/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	core := asker.New(cfg.DailyMessageLimit, store)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, core); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	}

	if err := core.Flush(); err != nil {
		log.Println("[ERR] Final save failed:", err)
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
