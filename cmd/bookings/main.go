package main

import (
	bookinghandler "classroom/internal/bookings/handler"
	bookingrepository "classroom/internal/bookings/repository"
	bookingservice "classroom/internal/bookings/service"
	"classroom/internal/bookings/validator"
	directoryhandler "classroom/internal/directory/handler"
	directoryrepository "classroom/internal/directory/repository"
	directoryservice "classroom/internal/directory/service"
	"classroom/internal/events"
	"classroom/internal/notifications/queue"
	"classroom/internal/notifications/scheduler"
	"classroom/pkg/app"
	"classroom/pkg/config"
)

func main() {
	cfg := config.Load("bookings")
	cfg.SetMongo()

	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	lockRepo := bookingrepository.NewBookingLockRepository(cfg)
	roomRepo := directoryrepository.NewMongoRoomRepository(cfg)
	batchRepo := directoryrepository.NewMongoBatchRepository(cfg)

	notificationQueue := queue.NewMongoQueue(cfg)
	notificationScheduler := scheduler.New(cfg, notificationQueue)

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		cfg.Log.Fatal("failed to initialize event publisher", "error", err)
	}
	defer publisher.Close()

	bookingService := bookingservice.NewBookingService(
		cfg,
		bookingRepo,
		lockRepo,
		roomRepo,
		batchRepo,
		validator.NewBookingValidator(cfg.Log),
		notificationScheduler,
		publisher,
	)
	availabilityService := directoryservice.NewAvailabilityService(cfg, roomRepo, bookingRepo)

	application := app.NewApplication(cfg)
	application.SetApp(
		bookinghandler.NewHealthHandler(cfg),
		bookinghandler.NewBookingHandler(cfg, bookingService),
		directoryhandler.NewRoomHandler(cfg, availabilityService),
	)
	application.Run()
}
