package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rl1809/cafe-pos/internal/adapter/terminal"
	"github.com/rl1809/cafe-pos/internal/core/domain"
	"github.com/rl1809/cafe-pos/internal/core/service"
)

func main() {
	var (
		noColor bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:          "cafe",
		Short:        "Interactive point-of-sale simulator for James' Café",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync()

			run(os.Stdin, os.Stdout, logger)
			return nil
		},
	}
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI styling (cosmetic only)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log session events to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, logger *zap.Logger) domain.DaySummary {
	catalog := domain.DefaultMenu()
	display := terminal.NewDisplay(out)
	prompter := terminal.NewPrompter(in, out, display)

	checkout := service.NewCheckoutService(catalog, prompter, display, logger)
	register := service.NewRegisterService(catalog, checkout, prompter, display, logger)

	return register.Run()
}

// newLogger builds the operational logger. The customer-facing console
// output stays on stdout; session events go to stderr and are quiet unless
// --verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
