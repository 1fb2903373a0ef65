package main

import (
	"context"
	"fmt"

	"github.com/pageza/recipebook/config"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/service"
	"github.com/pageza/recipebook/internal/storage"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand of one invocation.
type app struct {
	cfgFile  string
	dataFile string
	logLevel string

	cfg        *config.Config
	recipes    *service.RecipeService
	closeStore func() error
	prompt     prompter
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{prompt: newHuhPrompter()})
}

func newRootCmdFor(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recipebook",
		Short: "recipebook - a personal recipe catalog",
		Long: `recipebook keeps your recipes in one place.

Run without a subcommand to open the interactive menu. The catalog is loaded
on start and saved when you choose "Save and Exit" or after any subcommand
that changes it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShell(cmd.Context(), cmd.OutOrStdout())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVarP(&a.dataFile, "file", "f", "", "recipe file, implies the file storage backend (default recipes.json)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newShellCmd(a),
		newAddCmd(a),
		newListCmd(a),
		newFindCmd(a),
		newRemoveCmd(a),
	)
	return rootCmd
}

// setup loads configuration, opens the configured store and loads the book.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.dataFile != "" {
		cfg.StorageBackend = config.BackendFile
		cfg.DataFile = a.dataFile
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	gateway, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open recipe storage: %w", err)
	}

	a.cfg = cfg
	a.closeStore = closeStore
	a.recipes = service.NewRecipeService(gateway, cfg.Location())

	if _, err := a.recipes.Load(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Could not load recipes, starting with an empty book: "+err.Error()))
	}
	return nil
}

func (a *app) teardown() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

func (a *app) save(ctx context.Context) error {
	report, err := a.recipes.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to save recipes: %w", err)
	}
	logger.Debug("saved recipe book", "location", report.Location, "recipes", report.Saved)
	return nil
}
