package config

import "time"

const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultStoreBackend      = StoreBackendMemory
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "freezestore"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPricePerDayPerSpace = 150.0
	DefaultHandlingFee         = 500.0
	DefaultTaxRate             = 0.16

	DefaultSeedData            = true
	DefaultExpirySweepSchedule = "@every 1h"
	DefaultCORSAllowedOrigins  = "*"

	DefaultRateLimitRequests = 120
	DefaultRateLimitWindow   = 1 * time.Minute
	DefaultTrustedProxies    = ""

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultPaginationLimit = 100
)
