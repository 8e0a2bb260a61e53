package common

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	StartTimeKey contextKey = "__start_time"
)
