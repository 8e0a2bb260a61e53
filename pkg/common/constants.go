package common

import "time"

const (
	ServiceName     = "Sneaker Classification API"
	APIVersion      = "2.0.0"
	APIPrefix       = "/api/v2"
	HealthPrefix    = "/health"
	DocsPath        = "/docs"
	SearchMode      = "unique_models_optimized"
	RequestIDHeader = "X-Request-ID"

	ProbeTimeout    = 5 * time.Second
	StartupTimeout  = 10 * time.Second
	ShutdownTimeout = 15 * time.Second
)

// UnixTimestamp returns the current time as fractional unix seconds.
func UnixTimestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// ElapsedMs reports the time since start in milliseconds.
func ElapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
