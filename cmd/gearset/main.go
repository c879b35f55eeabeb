// Package main is the entry point for the gearset command line tool
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gearset/internal/config"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
)

// app carries the loaded configuration and the flag values that may
// override it
type app struct {
	cfg config.Config

	configPath       string
	logLevel         string
	source           string
	catalogName      string
	catalogDir       string
	redisAddr        string
	sqlitePath       string
	level            int
	class            string
	align            string
	workers          int
	progressInterval time.Duration
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gearset",
		Short: "Find the best equipment set for a character",
		Long: `gearset searches every combination of the items a character can use and
reports the set with the highest total value.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "gearset.yaml", "YAML config file; missing files are ignored")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.source, "source", "", "catalog source: bundled, file, redis or sqlite")
	flags.StringVar(&a.catalogName, "catalog", "", "catalog name or file")
	flags.StringVar(&a.catalogDir, "catalog-dir", "", "directory for file catalogs")
	flags.StringVar(&a.redisAddr, "redis-addr", "", "Redis address for the redis source")
	flags.StringVar(&a.sqlitePath, "sqlite-path", "", "database file for the sqlite source")

	rootCmd.AddCommand(
		newOptimizeCmd(a),
		newPoolsCmd(a),
		newGenerateCmd(a),
		newImportCmd(a),
		newCheckCmd(a),
	)

	return rootCmd
}

// addCharacterFlags registers the flags describing the character
func (a *app) addCharacterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.level, "level", 0, "character level")
	cmd.Flags().StringVar(&a.class, "class", "", "character class")
	cmd.Flags().StringVar(&a.align, "align", "", "character alignment")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if changed("source") {
		cfg.Catalog.Source = a.source
	}
	if changed("catalog") {
		cfg.Catalog.Name = a.catalogName
	}
	if changed("catalog-dir") {
		cfg.Catalog.Dir = a.catalogDir
	}
	if changed("redis-addr") {
		cfg.Catalog.RedisAddr = a.redisAddr
	}
	if changed("sqlite-path") {
		cfg.Catalog.SQLitePath = a.sqlitePath
	}
	if changed("level") {
		cfg.Character.Level = a.level
	}
	if changed("class") {
		cfg.Character.Class = a.class
	}
	if changed("align") {
		cfg.Character.Align = a.align
	}
	if changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if changed("progress-interval") {
		cfg.Search.ProgressInterval = a.progressInterval
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return errors.GetCode(err).ExitCode()
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
