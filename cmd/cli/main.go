package main

import (
	"context"
	"fmt"
	"os"
	"pharmacy-client/internal/app/config"
	"pharmacy-client/internal/app/drivers/logger"
	"time"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	prompt := newTerminalPrompt(os.Stdin, os.Stderr)
	bootstrap, err := bootstrapingTheApp(driverConfig, internalConfig, log, prompt, func(ctx context.Context) {
		fmt.Fprintln(os.Stderr, "Your session has expired. Log in again with `pharmacy login` or `pharmacy otp send`.")
	})
	if err != nil {
		log.Sugar().Fatalf("Error bootstrapping the app: %v", err)
	}

	exitCode := 0
	if err := newRootCommand(bootstrap, prompt).Execute(); err != nil {
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSecs),
	)
	defer cancel()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}
	os.Exit(exitCode)
}
