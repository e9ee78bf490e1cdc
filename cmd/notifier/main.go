package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	bookingrepository "classroom/internal/bookings/repository"
	directoryrepository "classroom/internal/directory/repository"
	"classroom/internal/notifications/dispatcher"
	"classroom/internal/notifications/queue"
	"classroom/internal/notifications/sweep"
	"classroom/internal/notifications/worker"
	"classroom/pkg/config"
	"classroom/pkg/mail"
)

func main() {
	cfg := config.Load("notifier")
	cfg.SetMongo()

	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	roomRepo := directoryrepository.NewMongoRoomRepository(cfg)
	userRepo := directoryrepository.NewMongoUserRepository(cfg)
	notificationQueue := queue.NewMongoQueue(cfg)

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}, cfg.Log)

	d := dispatcher.New(cfg, bookingRepo, roomRepo, userRepo, sender)
	s := sweep.New(cfg, bookingRepo, notificationQueue)

	w := worker.New(cfg, notificationQueue, d, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Start(ctx)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	sig := <-shutdown

	cfg.Log.Info("Shutdown signal received", "signal", sig)
	cancel()
	w.Stop()
	cfg.GracefulShutdown()
	cfg.Log.Info("Notifier stopped gracefully")
}
