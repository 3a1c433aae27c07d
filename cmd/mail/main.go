package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
	"github.com/zuacaldeira/kita-dienstplan/internal/logger"
)

func main() {
	/**********************************************
	 * Konfiguration laden
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Konfiguration konnte nicht geladen werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	/**********************************************
	 * Logger erstellen
	 **********************************************/
	log := logger.New(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}).With(slog.String("app", "kita-dienstplan-mail"))
	slog.SetDefault(log)

	/**********************************************
	 * Vorlagen laden
	 **********************************************/
	renderer, err := newRenderer("./templates", cfg.Email.From)
	if err != nil {
		log.Error("Mail-Vorlagen konnten nicht geladen werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	/**********************************************
	 * Mail-Client erstellen
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		log.Error("Mail-Client konnte nicht erstellt werden", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close()

	dialCtx, cancelDial := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancelDial()
	if err := client.DialWithContext(dialCtx); err != nil {
		log.Error("Verbindung zum Mailserver fehlgeschlagen", slog.String("error", err.Error()))
		os.Exit(1)
	}

	/**********************************************
	 * RabbitMQ verbinden
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		log.Error("Verbindung zu RabbitMQ fehlgeschlagen", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Error("Kanal konnte nicht erstellt werden", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		log.Error("Queue konnte nicht deklariert werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// one unacknowledged mail at a time
	if err := ch.Qos(1, 0, false); err != nil {
		log.Error("Prefetch konnte nicht gesetzt werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // consumer tag assigned by the broker
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		log.Error("Nachrichten konnten nicht abonniert werden", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("Nachrichtenkanal wurde geschlossen")
					return
				}
				log.Info("Nachricht empfangen", slog.String("messageID", msg.MessageId))

				m, err := renderer.render(msg.Body)
				if err != nil {
					log.Error("Mail konnte nicht erstellt werden", slog.String("messageID", msg.MessageId), slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					log.Error("Mail konnte nicht gesendet werden", slog.String("messageID", msg.MessageId), slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	log.Info("Warte auf Nachrichten... (CTRL+C zum Beenden)")
	<-sigChan

	log.Info("Mail-Worker wird beendet...")
	cancel()
	wg.Wait()
	log.Info("Mail-Worker beendet")
}
