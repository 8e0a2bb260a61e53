package router

import (
	"github.com/NeuralTrust/SneakerLens/docs"
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	handlers "github.com/NeuralTrust/SneakerLens/pkg/handlers/http"
	"github.com/NeuralTrust/SneakerLens/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const SwaggerPath = "/swagger.json"

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	config              *config.Config
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	cfg *config.Config,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		config:              cfg,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	if r.handlerTransport.SearchTextHandler == nil || r.handlerTransport.ClassifyHandler == nil {
		return ErrInvalidHandlerTransport
	}

	if r.middlewareTransport != nil {
		for _, h := range r.middlewareTransport.Chain() {
			router.Use(h)
		}
	}

	ht := r.handlerTransport

	router.Get("/", ht.RootHandler.Handle)
	router.Get("/favicon.ico", ht.FaviconHandler.Handle)
	router.Get("/version", ht.VersionHandler.Handle)

	health := router.Group(common.HealthPrefix)
	{
		health.Get("/", ht.HealthHandler.Handle)
		health.Get("/live", ht.LiveHandler.Handle)
		health.Get("/ready", ht.ReadyHandler.Handle)
	}

	v2 := router.Group(common.APIPrefix)
	{
		v2.Post("/search-text", ht.SearchTextHandler.Handle)
		v2.Post("/classify", ht.ClassifyHandler.Handle)
		v2.Get("/brands", ht.BrandsHandler.Handle)
		v2.Get("/stats", ht.StatsHandler.Handle)
	}

	if r.config.IsDevelopment() {
		router.Get(SwaggerPath, func(c *fiber.Ctx) error {
			c.Type("json")
			return c.SendString(docs.SwaggerInfo.ReadDoc())
		})
		router.Get(common.DocsPath+"/*", swagger.New(swagger.Config{
			URL: SwaggerPath,
		}))
	}
	return nil
}
