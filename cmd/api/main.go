package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/handler"
	"github.com/zuacaldeira/kita-dienstplan/internal/logger"
	"github.com/zuacaldeira/kita-dienstplan/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * Konfiguration laden
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Konfiguration konnte nicht geladen werden", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Logger erstellen
	 **********************************************/
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	log := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
		ReplaceAttr: logFormat.ReplaceAttr,
	}).With(
		slog.String("app", "kita-dienstplan"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(log)

	/**********************************************
	 * Datenbank verbinden
	 **********************************************/
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		log.Error("Datenbank-Pool konnte nicht erstellt werden", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect
	if err := dbpool.PingContext(ctx); err != nil {
		log.Error("Verbindung zur Datenbank fehlgeschlagen", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Repository erstellen
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * Initialen Administrator sicherstellen
	 **********************************************/
	if err := ensureInitialAdmin(cfg, repo); err != nil {
		log.Error("Initialer Administrator konnte nicht angelegt werden", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * RabbitMQ verbinden
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		log.Error("Verbindung zu RabbitMQ fehlgeschlagen", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Kanal konnte nicht erstellt werden", "error", err)
		os.Exit(1)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Error("Queue konnte nicht deklariert werden", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * Redis verbinden
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
	defer cancelPing()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		// totals are served uncached, OTPs need redis
		log.Warn("Redis nicht erreichbar", "error", err)
	}

	/**********************************************
	 * Handler erstellen
	 **********************************************/
	h, err := handler.NewHandler(cfg, repo, ch, rdb, log)
	if err != nil {
		log.Error("Handler konnte nicht erstellt werden", "error", err)
		os.Exit(1)
	}
	h.RegisterRoutes()

	/**********************************************
	 * HTTP-Server starten
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("Server wird gestartet...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server konnte nicht gestartet werden", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("Server wird beendet...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server konnte nicht sauber beendet werden", slog.String("error", err.Error()))
	}
	log.Info("Server beendet")
}

// ensureInitialAdmin creates the configured administrator unless the username is taken.
func ensureInitialAdmin(cfg *config.Config, repo *repository.Repository) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	initialAdmin := &domain.Admin{
		Username:     cfg.InitialAdmin.Username,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialAdmin.FullName,
		Email:        cfg.InitialAdmin.Email,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.CreateAdmin(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "admins_username_key" {
			return nil
		}
		return err
	}

	return nil
}
