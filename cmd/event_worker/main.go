package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/brickforge/brickforge-api/config"
	"github.com/brickforge/brickforge-api/internal/application"
	"github.com/brickforge/brickforge-api/pkg/helpers"
)

// Consumes lifecycle events published by the API and writes them to the
// process log. Kept separate from the API so event handling can grow
// (webhooks, stats) without touching request handling.
func main() {
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-events", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEventsQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	logger.Infof("event worker consuming from %q", cfg.RabbitMQEventsQueue)

	go func() {
		for d := range msgs {
			var ev application.Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				logger.WithError(err).Warn("discarding undecodable event")
				_ = d.Nack(false, false)
				continue
			}
			logger.WithFields(logrus.Fields{
				"type":     ev.Type,
				"user_id":  ev.UserID,
				"username": ev.Username,
				"build_id": ev.BuildID,
				"at":       ev.At,
			}).Info("lifecycle event")
			_ = d.Ack(false)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("event worker shutting down")
}
