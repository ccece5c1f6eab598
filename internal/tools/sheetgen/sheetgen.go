// Package sheetgen writes a password sheet PDF from the command line.
package sheetgen

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	entrypoint "github.com/louisbranch/password-sheet/internal/platform/cmd"
	"github.com/louisbranch/password-sheet/internal/sheet"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// Config holds configuration for sheet generation.
type Config struct {
	Output string `env:"OUTPUT" envDefault:"password_sheet.pdf"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Output, "out", cfg.Output, `output PDF path ("-" for stdout)`)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates one sheet and writes it to cfg.Output. A summary of the grid
// is printed to out unless the PDF itself goes to out.
func Run(ctx context.Context, cfg Config, out io.Writer, opts sheet.Options) error {
	path := strings.TrimSpace(cfg.Output)
	if path == "" {
		return errors.New("output path is required")
	}
	if out == nil {
		return errors.New("output is required")
	}

	generator, err := sheet.NewGenerator(opts)
	if err != nil {
		return err
	}
	s, err := generator.Generate(ctx)
	if err != nil {
		return err
	}

	if path == StdoutPath {
		if _, err := out.Write(s.PDF); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, s.PDF, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	l := s.Layout
	_, err = fmt.Fprintf(out, "generated: %s\ngrid: %d x %d = %d characters\n", path, l.Cols, l.Rows, l.Cols*l.Rows)
	return err
}
