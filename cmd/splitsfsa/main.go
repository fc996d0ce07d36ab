package main

import (
	"context"
	"flag"
	"os"

	"github.com/jeifrig/splitshappen/internal/cmd/splitsfsa"
	"github.com/jeifrig/splitshappen/internal/platform/config"
)

func main() {
	cfg, err := splitsfsa.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := splitsfsa.Run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("score game: %v", err)
	}
}
