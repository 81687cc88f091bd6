package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taskmanager/internal/config"
	"taskmanager/internal/migrations"
	"taskmanager/internal/seed"
	"taskmanager/internal/server"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmanager",
		Short: "Task manager REST API",
		Long: `Task manager REST API: users, task statuses, labels and tasks.

Without a subcommand the HTTP server is started.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newMigrateCommand(),
		&cobra.Command{
			Use:   "seed",
			Short: "Create the admin user, default statuses and default labels",
			Args:  cobra.NoArgs,
			RunE:  runSeed,
		},
	)
	return root
}

func newMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := migrations.Up(cfg.MigrationURL()); err != nil {
					return err
				}
				log.Println("✅ Migrations applied")
				return nil
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (one by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps, err := parseSteps(args)
				if err != nil {
					return err
				}
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				if err := migrations.Down(cfg.MigrationURL(), steps); err != nil {
					return err
				}
				log.Printf("✅ Rolled back %d migration(s)", steps)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				version, dirty, err := migrations.Version(cfg.MigrationURL())
				if err != nil {
					return err
				}
				pending, err := migrations.Pending(version)
				if err != nil {
					return err
				}
				printVersion(cmd.OutOrStdout(), version, dirty, pending)
				return nil
			},
		},
	)
	return migrate
}

func printVersion(w io.Writer, version uint, dirty bool, pending []string) {
	fmt.Fprintf(w, "version %d (dirty: %t)\n", version, dirty)
	if len(pending) == 0 {
		fmt.Fprintln(w, "up to date")
		return
	}
	fmt.Fprintf(w, "pending: %s\n", strings.Join(pending, ", "))
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	s, err := server.Init(cfg)
	if err != nil {
		return fmt.Errorf("❌ Server initialization failed: %w", err)
	}

	s.Run()
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := server.OpenDB(cfg)
	if err != nil {
		return err
	}
	services := server.NewServices(db, cfg)

	seeder := seed.NewSeeder(services.Users, services.Statuses, services.Labels)
	return seeder.Run(context.Background(), cfg.AdminEmail, cfg.AdminPassword)
}
