// Package main provides the entry point for the Mortis Discord bot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/mortisbot/mortis/internal/app"
	"github.com/mortisbot/mortis/internal/bot"
	"github.com/mortisbot/mortis/internal/commands"
	"github.com/mortisbot/mortis/internal/config"
	"github.com/mortisbot/mortis/internal/discord"
	"github.com/mortisbot/mortis/internal/infrastructure"
	"github.com/mortisbot/mortis/internal/joke"
	"github.com/mortisbot/mortis/internal/moderation"
	pkginfra "github.com/mortisbot/mortis/pkg/infrastructure"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,
		joke.Module,

		// Application modules
		moderation.Module,
		commands.Module,
		bot.Module,

		// Supply the config path
		fx.Supply(*configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go application.Run()

	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	err := application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
