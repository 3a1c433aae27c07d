package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/logger"
	"github.com/zuacaldeira/kita-dienstplan/internal/repository"
	"github.com/zuacaldeira/kita-dienstplan/internal/seed"
	"github.com/zuacaldeira/kita-dienstplan/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const seedActor = "seed"

type app struct {
	cfg    *config.Config
	dbpool *sql.DB
	repo   *repository.Repository
}

func (a *app) open() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("Konfiguration konnte nicht geladen werden: %w", err)
	}
	// logs go to stderr, stdout carries the command output
	slog.SetDefault(logger.NewWithWriter(os.Stderr, cfg.Log.Level))

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return err
	}
	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		dbpool.Close()
		return fmt.Errorf("Verbindung zur Datenbank fehlgeschlagen: %w", err)
	}

	a.cfg = cfg
	a.dbpool = dbpool
	a.repo = repository.NewRepository(cfg, dbpool)
	return nil
}

func (a *app) close() {
	if a.dbpool != nil {
		a.dbpool.Close()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Testdaten für den Kita Dienstplan anlegen",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newAdminCmd(a),
		newStaffCmd(a),
		newWeekCmd(a),
		newEntriesCmd(a),
		newImportStaffCmd(a),
	)

	return root
}

func newAdminCmd(a *app) *cobra.Command {
	var username, fullName, email, password string
	var viewer bool

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Einen Benutzer anlegen",
		RunE: func(cmd *cobra.Command, args []string) error {
			generated := password == ""
			if generated {
				password = utils.GenerateRandomPassword(16)
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			admin := &domain.Admin{
				Username:     username,
				PasswordHash: string(hash),
				FullName:     fullName,
				Email:        email,
				Role:         domain.RoleAdmin,
				IsActive:     true,
			}
			if viewer {
				admin.Role = domain.RoleViewer
			}

			if err := a.repo.CreateAdmin(admin); err != nil {
				return err
			}

			slog.Info("Benutzer angelegt", "username", admin.Username, "role", admin.Role)
			if generated {
				fmt.Printf("Passwort: %s\n", password)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Benutzername")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Vollständiger Name")
	cmd.Flags().StringVar(&email, "email", "", "E-Mail-Adresse")
	cmd.Flags().StringVar(&password, "password", "", "Passwort, wird sonst zufällig erzeugt")
	cmd.Flags().BoolVar(&viewer, "viewer", false, "nur Leserechte")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newStaffCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Zufällige Mitarbeiter anlegen",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return errors.New("-n muss größer als 0 sein")
			}

			groups, err := a.repo.GetAllGroups(true)
			if err != nil {
				return err
			}
			groupIDs := make([]int64, 0, len(groups))
			for _, group := range groups {
				groupIDs = append(groupIDs, group.ID)
			}

			staffList := make([]*domain.Staff, 0, n)
			for i := 0; i < n; i++ {
				staffList = append(staffList, utils.GenerateRandomStaff(groupIDs))
			}

			// name collisions are skipped
			inserted, err := a.repo.CreateStaffBatch(staffList, seedActor)
			if err != nil {
				return err
			}

			slog.Info("Mitarbeiter angelegt", slog.Int("count", inserted))
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "count", "n", 5, "Anzahl der Mitarbeiter")

	return cmd
}

func weekFlags(cmd *cobra.Command, year, week *int) {
	now := time.Now()
	currentYear, currentWeek := now.ISOWeek()
	cmd.Flags().IntVar(year, "year", currentYear, "Jahr")
	cmd.Flags().IntVar(week, "week", currentWeek, "Kalenderwoche")
}

// ensureWeek returns the stored week, creating it first when needed.
func (a *app) ensureWeek(year, weekNumber int) (*domain.WeekPeriod, error) {
	week, err := a.repo.GetWeeklyScheduleByWeek(weekNumber, year)
	if err == nil {
		return week, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	period := domain.NewWeekPeriod(year, weekNumber)
	if err := utils.ValidateWeekPeriod(&period); err != nil {
		return nil, err
	}
	if err := a.repo.CreateWeeklySchedule(&period, seedActor); err != nil {
		return nil, err
	}

	slog.Info("Wochenplan angelegt", "year", year, "week", weekNumber, "id", period.ID)
	return &period, nil
}

func newWeekCmd(a *app) *cobra.Command {
	var year, week int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Einen Wochenplan anlegen",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.ensureWeek(year, week)
			return err
		},
	}
	weekFlags(cmd, &year, &week)

	return cmd
}

func newEntriesCmd(a *app) *cobra.Command {
	var year, week int

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Zufällige Einträge für alle aktiven Mitarbeiter einer Woche anlegen",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := a.ensureWeek(year, week)
			if err != nil {
				return err
			}

			staffList, err := a.repo.GetAllStaff(repository.StaffFilter{ActiveOnly: true})
			if err != nil {
				return err
			}

			created := 0
			for _, staff := range staffList {
				entries := utils.GenerateRandomWeekEntries(period, staff.ID)
				if err := a.repo.CreateScheduleEntries(entries, seedActor); err != nil {
					slog.Warn("Einträge übersprungen", "staff", staff.FullName, "error", err)
					continue
				}
				created += len(entries)
			}

			slog.Info("Einträge angelegt", "year", year, "week", week, slog.Int("count", created))
			return nil
		},
	}
	weekFlags(cmd, &year, &week)

	return cmd
}

func newImportStaffCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import-staff",
		Short: "Mitarbeiter aus einer CSV-Datei importieren",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = a.cfg.Seed.StaffCSV
			}
			_, err := seed.ImportStaff(a.repo, file, seedActor)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV-Datei, Standard aus SEED_STAFF_CSV")

	return cmd
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		slog.Error("Seed fehlgeschlagen", "error", err)
		os.Exit(1)
	}
}
