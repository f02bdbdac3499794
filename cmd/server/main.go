package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"projectlink/internal/app"
	"projectlink/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bootstrap, cleanup, err := app.Bootstrap(cfg)
	if err != nil {
		log.Fatalf("failed to bootstrap app: %v", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		log.Fatalf("invalid HTTP port: %v", err)
	}
	wsAddr, err := app.ListenAddr(cfg.App.WSPort)
	if err != nil {
		log.Fatalf("invalid WS port: %v", err)
	}
	bootstrap.WS.Addr = wsAddr

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go bootstrap.Hub.Run(hubCtx)

	errCh := make(chan error, 2)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()
	go func() {
		log.Printf("WS listening | addr=%s", wsAddr)
		if err := bootstrap.WS.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("server error: %v", err)
		}
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bootstrap.WS.Shutdown(ctx); err != nil {
		log.Printf("ws shutdown error: %v", err)
	}
	if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	stopHub()
}
