package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clinic/clinic/internal/config"
	"github.com/clinic/clinic/internal/domain/appointment"
	"github.com/clinic/clinic/internal/domain/billing"
	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/patient"
	"github.com/clinic/clinic/internal/platform/db"
	"github.com/clinic/clinic/internal/platform/logging"
)

// app wires the store, repositories, and services together. The UI process
// embeds the same core; this command covers store provisioning and the few
// maintenance tasks that make sense without a screen.
type app struct {
	cfg          *config.Config
	log          zerolog.Logger
	store        *db.Store
	patients     *patient.Service
	doctors      *doctor.Service
	appointments *appointment.Service
	billings     *billing.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFile)
	store := db.New(cfg.DBPath, log)

	return &app{
		cfg:          cfg,
		log:          log,
		store:        store,
		patients:     patient.NewService(patient.NewSQLiteRepo(store), log),
		doctors:      doctor.NewService(doctor.NewSQLiteRepo(store), log),
		appointments: appointment.NewService(appointment.NewSQLiteRepo(store), log),
		billings:     billing.NewService(billing.NewSQLiteRepo(store), log),
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic management store tools",
	}

	rootCmd.AddCommand(initdbCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(overdueCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initdbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the clinic tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if !a.store.Ping(ctx) {
				return fmt.Errorf("cannot open database at %s", a.store.Path())
			}
			if !a.store.InitSchema(ctx) {
				// Failed statements are already logged; creation is
				// idempotent, so rerunning after fixing the cause is safe.
				fmt.Println("Schema initialization finished with errors, see log.")
				return nil
			}
			fmt.Printf("Schema ready at %s\n", a.store.Path())
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the store with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("patients")

			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if !a.store.InitSchema(ctx) {
				return fmt.Errorf("schema initialization failed")
			}
			if err := seed(ctx, a, count); err != nil {
				return err
			}
			fmt.Printf("Seeded %d patient(s) with doctors, appointments, and billing.\n", count)
			return nil
		},
	}
	cmd.Flags().Int("patients", 5, "Number of demo patients to create")
	return cmd
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List unpaid billings dated before today",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			overdue := a.billings.Overdue(context.Background())
			if len(overdue) == 0 {
				fmt.Println("No overdue billings.")
				return nil
			}

			fmt.Printf("%-6s %-10s %-12s %-10s %s\n", "ID", "PATIENT", "DATE", "STATUS", "AMOUNT")
			for _, b := range overdue {
				fmt.Printf("%-6d %-10d %-12s %-10s %.2f\n", b.ID, b.PatientID, b.Date, b.Status, b.Amount)
			}
			return nil
		},
	}
}
