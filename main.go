// fleetdesk/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/faiface/mainthread"
	"go.uber.org/zap"

	"fleetdesk/api"
	"fleetdesk/config"
	"fleetdesk/game"
	"fleetdesk/logs"
	"fleetdesk/ui"
	"fleetdesk/utils"
)

func runApp() {
	// 1. Config and logging
	cfgErr := config.Load()
	cfg := config.Get()
	logger, err := logs.New(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()
	if cfgErr != nil {
		logger.Warn("config could not be read, using defaults", zap.Error(cfgErr))
	}
	utils.SetLogger(logger)

	desk := game.NewDesk(cfg.DocumentsDir, cfg.Parser, logger)

	// 2. GUI manager for native dialogs
	guiReadyChan := make(chan bool)
	go ui.GUIManager(guiReadyChan, logger)
	<-guiReadyChan
	logger.Info("GUI manager ready")

	// 3. HTTP server and routes
	handlers := api.NewHandlers(desk, ui.NativePicker{}, logger)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handlers)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 4. Serve and open the browser
	go func() {
		logger.Info("listening", zap.String("url", "http://"+cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()
	time.Sleep(500 * time.Millisecond)
	if err := utils.OpenBrowser(fmt.Sprintf("http://%s", cfg.Server.Addr)); err != nil {
		logger.Warn("could not open browser", zap.Error(err))
	}

	// 5. Wait for the page to close
	<-handlers.Done()
	logger.Info("front end closed, shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	ui.CloseGUIManager()
}

func main() {
	mainthread.Run(runApp)
}
