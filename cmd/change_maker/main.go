package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/change_maker/internal/cli"
	"github.com/spf13/viper"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	root := cli.NewRoot(&cli.CmdParams{
		Viper: viper.GetViper(),
		Use:   "change_maker",
		Short: "Work out the coins and notes owed as change",
		Long: `change_maker reads a file of "<owed>,<paid>" transactions and writes, for each
one, the denominations to hand back. It can also serve the same computation over HTTP.`,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
