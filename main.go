package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/note35/lamdef/cli"
	"github.com/note35/lamdef/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
