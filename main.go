package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.thinkinpower.net/bingen/bdata"
	"git.thinkinpower.net/bingen/config"
	"git.thinkinpower.net/bingen/data"
	"git.thinkinpower.net/bingen/file"
	"git.thinkinpower.net/bingen/middleware"
	"git.thinkinpower.net/bingen/route"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

func setMode(mode string) {
	switch mode {
	case data.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case data.RunModeTest:
		gin.SetMode(gin.TestMode)
	case data.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logger.InfoLevel)

	configDir := flag.String("c", ".", "-c /etc/bingen")
	port := flag.Int("p", 0, "-p 8080")
	mode := flag.String("m", "", "-m [dev|test|release]")
	dataDir := flag.String("d", "", "-d /home/testuser/bindata")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		logger.Fatalf("load config failed: %s", err)
	}
	//命令行参数优先
	if *port > 0 {
		cfg.ServerPort = *port
	}
	if *mode != "" {
		cfg.RunMode = *mode
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db := bdata.NewBinDatabase(bdata.BinDatabaseModeMemory)
	if err = db.Init(bdata.BinDataConfig{DataDir: cfg.DataDir}); err != nil {
		logger.Fatalf("load bin data failed: %s, dataDir: %s", err, cfg.DataDir)
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	go func() {
		if err := bdata.WatchBinDataDir(watchCtx, cfg.DataDir, func(e file.FileEvent) {
			if err := db.Reload(); err != nil {
				logger.Errorf("reload bin data after %s failed: %s", e.Filepath, err)
			}
		}); err != nil {
			logger.Errorf("watch bin data dir %s failed: %s", cfg.DataDir, err)
		}
	}()

	//启动http服务
	logger.Info("starting http server...")
	setMode(cfg.RunMode)
	r := gin.New()
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	route.Register(r, db, route.Options{DefaultQuantity: cfg.DefaultQuantity})

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		logger.Infof("listening on port %d", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down Server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server Shutdown failure.", err)
	}
	logger.Info("Server exit.")
}
