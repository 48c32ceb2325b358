package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const appName = "go-life"

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	config, err := utils.ParseArgs(appName, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitUsage
	}

	logger := log.New(stderr, "gol: ", log.LstdFlags)

	board, err := loadBoard(config, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitFailure
	}

	// Handle Ctrl+C by finishing the current frame and reporting where we stopped
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, stats, err := playGame(ctx, config, board, stdout, logger)
	if err != nil && !isInterruption(err) {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return exitFailure
	}

	fmt.Fprintln(stdout, finalMessage(result))
	if config.ShowStats && stats != nil {
		fmt.Fprintln(stdout, stats.Summary())
	}
	return exitOK
}
