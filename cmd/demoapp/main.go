// demoapp is the service the pipeline packages: two static JSON endpoints
// on port 8000. No flags, no environment configuration; everything about
// this process is fixed so the image metadata fully describes it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stagehand/internal/logger"
	"stagehand/internal/server"
)

func main() {
	log, err := logger.New("production")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(log).Run(ctx); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}
