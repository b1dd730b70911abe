package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"practice_automation/presentation/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	termInterface, err := terminal.NewTerminalInterface()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// scenario names on the command line run once, without the prompt
	if names := os.Args[1:]; len(names) > 0 {
		ok, err := termInterface.RunScenarios(ctx, names)
		termInterface.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	defer termInterface.Close()
	if err := termInterface.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
