package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"overworld/internal/server"
	"overworld/internal/session"
	"overworld/internal/version"
	"overworld/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var port string
	flag.StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	flag.Parse()

	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	logger.Log.Info("Starting Overworld server...")
	logger.Log.Info(version.String())

	registry := session.NewRegistry()
	srv := server.New(registry, port)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Infof("Shutting down, %d players online", registry.Count())
}
