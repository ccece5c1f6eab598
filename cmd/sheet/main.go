// Package main writes a password sheet PDF to disk.
package main

import (
	"context"
	"flag"
	"os"

	entrypoint "github.com/louisbranch/password-sheet/internal/platform/cmd"
	"github.com/louisbranch/password-sheet/internal/platform/config"
	"github.com/louisbranch/password-sheet/internal/sheet"
	"github.com/louisbranch/password-sheet/internal/tools/sheetgen"
)

func main() {
	cfg, err := sheetgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceSheet, func(ctx context.Context) error {
		return sheetgen.Run(ctx, cfg, os.Stdout, sheet.Options{})
	})
	if err != nil {
		config.Exitf("generate sheet: %v", err)
	}
}
