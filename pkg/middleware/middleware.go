package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

type Transport struct {
	PanicRecoverMiddleware Middleware
	CORSMiddleware         Middleware
	RequestIDMiddleware    Middleware
	MetricsMiddleware      Middleware
}

// Chain returns the handlers in the order they must be registered. Nil entries are skipped.
func (t Transport) Chain() []fiber.Handler {
	var out []fiber.Handler
	for _, m := range []Middleware{
		t.PanicRecoverMiddleware,
		t.CORSMiddleware,
		t.RequestIDMiddleware,
		t.MetricsMiddleware,
	} {
		if m != nil {
			out = append(out, m.Middleware())
		}
	}
	return out
}
