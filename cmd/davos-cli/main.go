package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/davos/internal/cli"
)

// Default configuration constants.
const (
	defaultBaseURL = "http://localhost:8080"
	defaultTimeout = 30 * time.Second
)

func main() {
	var (
		baseURL = flag.String("url", defaultBaseURL, "Base URL of the recommendation service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := cli.NewClient(*baseURL, *timeout)
	console := cli.NewConsole(client, os.Stdin, os.Stdout)

	if err := console.Run(ctx); err != nil {
		os.Stderr.WriteString("console failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
