package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Mariem-Daha/chefcode1.0/internal/cache"
	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/config"
	"github.com/Mariem-Daha/chefcode1.0/internal/ui"
	"github.com/Mariem-Daha/chefcode1.0/internal/util"
)

func main() {
	configPath := flag.String("config", "chefcode.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := util.InitLogger(cfg.Log.Env, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer util.SyncLogger()
	logger := util.GetLogger()

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		logger.Error("open cache", zap.String("path", cfg.Cache.Path), zap.Error(err))
		fmt.Fprintf(os.Stderr, "open cache: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	api := client.New(cfg.Server.BaseURL, cfg.Server.APIKey, cfg.Timeout())
	if api.Ping(context.Background()) {
		logger.Info("backend reachable", zap.String("backend", api.BaseURL()))
	} else {
		logger.Warn("backend unreachable, starting from cache", zap.String("backend", api.BaseURL()))
	}

	app := ui.New(api, store)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
