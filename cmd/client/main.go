package main

import (
	"Fabrika/internal/cli/commands"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	serverURL := os.Getenv("SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}
	flag.StringVar(&serverURL, "s", serverURL, "адрес сервера Fabrika")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := commands.Dispatch(ctx, serverURL, flag.Args())
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
