package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "classroom"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultNotificationLead  = 10 * time.Minute
	DefaultSweepInterval     = 15 * time.Minute
	DefaultQueuePollInterval = 1 * time.Minute
	DefaultQueueClaimLimit   = 50
	DefaultQueueMaxAttempts  = 5

	DefaultSMTPHost = "localhost"
	DefaultSMTPPort = 587
	DefaultMailFrom = "no-reply@classroom.local"

	DefaultKafkaBookingTopic = "classroom.bookings"

	DefaultPaginationLimit = 100
)
