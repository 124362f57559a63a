package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/onboarded/internal/config"
	"github.com/jask/onboarded/internal/database"
	"github.com/jask/onboarded/internal/logging"
	"github.com/jask/onboarded/internal/onboarding"
	"github.com/jask/onboarded/internal/profile"
	"github.com/jask/onboarded/internal/service"
	"github.com/jask/onboarded/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := &env{}
	err := newRootCmd(e).ExecuteContext(ctx)
	e.close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// env is everything a command needs once config and the database are up.
type env struct {
	cfgPath  string
	cfg      config.Config
	log      *zap.Logger
	db       *sql.DB
	store    *profile.SQLStore
	accounts *service.AccountService
	maint    *service.MaintenanceService
}

func (e *env) close() {
	if e.db != nil {
		_ = e.db.Close()
		e.db = nil
	}
	if e.log != nil {
		_ = e.log.Sync()
	}
}

type rootFlags struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd(e *env) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "onboarded",
		Short: "Sign up once, then see your profile",
		Long: `onboarded walks you through a short sign-up (name, age, gender) and
remembers the result locally. Once signed in it shows your profile until you
sign out.

Run without arguments to start the interactive wizard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.open(cmd.Context(), flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), e)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/onboarded/config.toml)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "sqlite database path (overrides database.path)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(profileCmd(e), signInCmd(e), signOutCmd(e), resetCmd(e), statusCmd(e), configCmd(e))
	return root
}

func (e *env) open(ctx context.Context, flags rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.dbPath != "" {
		cfg.Database.Path = flags.dbPath
	}
	e.cfgPath = flags.configPath
	e.cfg = cfg

	logger, err := logging.New(cfg.Log, flags.verbose)
	if err != nil {
		return err
	}
	e.log = logger

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	e.db = db
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	logger.Debug("database ready", zap.String("path", cfg.Database.Path))

	e.store = profile.NewSQLStore(db, logger)
	e.accounts = &service.AccountService{Profiles: e.store, Log: logger}
	e.maint = &service.MaintenanceService{DB: db}
	return nil
}

func runInteractive(ctx context.Context, e *env) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, e.store, e.log), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func profileCmd(e *env) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.store.Read(cmd.Context())
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}
			return profile.Encode(cmd.OutOrStdout(), p, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", profile.FormatText, "output format: text, toml or yaml")
	return cmd
}

func signInCmd(e *env) *cobra.Command {
	var (
		name   string
		age    float64
		gender string
	)
	cmd := &cobra.Command{
		Use:     "signin",
		Short:   "Complete the sign-up without the interactive wizard",
		Example: `  onboarded signin --name Ann --age 30 --gender Female`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			route, current, err := e.accounts.Launch(ctx)
			if err != nil {
				return err
			}
			if route == service.RouteProfile {
				return fmt.Errorf("already signed in as %s; run `onboarded signout` first", profile.DisplayName(current))
			}

			flow := onboarding.NewFlow(e.store, e.log)
			if err := flow.RunToGender(ctx, name, age); err != nil {
				return promptError(err)
			}
			g, err := onboarding.ParseGender(gender)
			if err != nil {
				return promptError(err)
			}
			if err := flow.Dispatch(ctx, onboarding.SetGender{Value: g}); err != nil {
				return promptError(err)
			}
			if err := flow.Advance(ctx); err != nil {
				return promptError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s.\n", name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name (at least 3 characters)")
	cmd.Flags().Float64Var(&age, "age", onboarding.DefaultAge, "your age (18-100)")
	cmd.Flags().StringVar(&gender, "gender", "", "Male, Female or Non-Binary")
	return cmd
}

func signOutCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.accounts.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func resetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe every stored setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.maint.Reset(cmd.Context()); err != nil {
				return err
			}
			e.log.Info("store reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Store reset.")
			return nil
		},
	}
}

func statusCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the database location, schema version and who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := database.SchemaVersion(e.cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("schema version: %w", err)
			}
			route, p, err := e.accounts.Launch(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database: %s\n", e.cfg.Database.Path)
			if dirty {
				fmt.Fprintf(out, "schema version: %d (dirty)\n", version)
			} else {
				fmt.Fprintf(out, "schema version: %d\n", version)
			}
			if route == service.RouteProfile {
				fmt.Fprintf(out, "signed in: %s\n", profile.DisplayName(p))
			} else {
				fmt.Fprintln(out, "signed in: no")
			}
			return nil
		},
	}
}

func configCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(e.cfgPath)
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists; pass --force to overwrite", path)
				}
			}
			if err := config.Save(path, e.cfg); err != nil {
				return err
			}
			e.log.Info("config written", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s.\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// promptError swaps a validation failure for the text the user should read.
func promptError(err error) error {
	var verr *onboarding.ValidationError
	if errors.As(err, &verr) && verr.Prompt != "" {
		return errors.New(verr.Prompt)
	}
	return err
}
