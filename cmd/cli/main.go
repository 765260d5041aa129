package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/tasktracker/internal/cli"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
)

func main() {

	ctx := context.Background()
	logger := logging.NewJSONLogger(os.Stderr, slog.LevelWarn)

	app := cli.NewApp(os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
