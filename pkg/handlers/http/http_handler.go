package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Service
	RootHandler    Handler
	FaviconHandler Handler
	VersionHandler Handler

	// Health
	HealthHandler Handler
	LiveHandler   Handler
	ReadyHandler  Handler

	// Search
	SearchTextHandler Handler
	ClassifyHandler   Handler
	BrandsHandler     Handler
	StatsHandler      Handler
}
