package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"lostfound/internal/app"
	"lostfound/internal/config"
	"lostfound/internal/db"
	"lostfound/internal/logger"
	"lostfound/internal/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "lostfound",
	Short:         "Lost and found portal server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if err := logger.InitLogger(c); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		warnings, err := c.Validate()
		if err != nil {
			logger.Log.Error("Invalid configuration", zap.Error(err))
			return err
		}
		for _, w := range warnings {
			logger.Log.Warn(w)
		}
		cfg = c
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and background workers",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  migrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1 step)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  migrateDown,
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE:  migrateVersion,
}

var createMasterCmd = &cobra.Command{
	Use:   "create-master",
	Short: "Create a master account from the command line",
	Long: `Creates a master account without going through the HTTP API.

Example:
  lostfound create-master --first-name Ana --last-name Souza \
    --email ana@senaimgaluno.com.br --registration 1234567 --password segredo1`,
	RunE: createMaster,
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired sessions and password reset tokens",
	RunE:  purge,
}

var masterInput models.RegistrationInput

func init() {
	f := createMasterCmd.Flags()
	f.StringVar(&masterInput.FirstName, "first-name", "", "first name")
	f.StringVar(&masterInput.LastName, "last-name", "", "last name")
	f.StringVar(&masterInput.Email, "email", "", "institutional email")
	f.StringVar(&masterInput.RegistrationNumber, "registration", "", "registration number (6-10 digits)")
	f.StringVar(&masterInput.Password, "password", "", "password (min 6 chars)")
	for _, name := range []string{"first-name", "last-name", "email", "registration", "password"} {
		_ = createMasterCmd.MarkFlagRequired(name)
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, createMasterCmd, purgeCmd)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := app.InitApp(ctx, cfg)
	if err != nil {
		logger.Log.Error("App init failed", zap.Error(err))
		return err
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Log.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Log.Info("Server stopped")
	return nil
}

func migrateUp(cmd *cobra.Command, args []string) error {
	pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	return db.ApplyMigrations(pool)
}

func migrateDown(cmd *cobra.Command, args []string) error {
	steps := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid steps %q", args[0])
		}
		steps = n
	}

	pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	return db.RollbackMigrations(pool, steps)
}

func migrateVersion(cmd *cobra.Command, args []string) error {
	pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	v, dirty, err := db.MigrationVersion(pool)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", v, dirty)
	return nil
}

func createMaster(cmd *cobra.Command, args []string) error {
	a, err := app.InitApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	in := masterInput
	in.ConfirmPassword = in.Password
	user, err := a.Auth().RegisterUser(cmd.Context(), in, models.RoleMaster)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "master %s created (id %d)\n", user.RegistrationNumber, user.ID)
	return nil
}

func purge(cmd *cobra.Command, args []string) error {
	a, err := app.InitApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	sessions, tokens, err := a.Purge(cmd.Context())
	if err != nil {
		return err
	}
	if cfg.SessionStore != "postgres" {
		logger.Log.Warn("In-memory sessions live in the server process, only reset tokens were purged")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "purged %d sessions and %d reset tokens\n", sessions, tokens)
	return nil
}
