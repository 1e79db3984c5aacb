package server

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"blogs-api/config"
	_ "blogs-api/docs"
	"blogs-api/internal/controllers"
	"blogs-api/internal/routes"
	"blogs-api/internal/services"
)

type Options struct {
	Config    config.Config
	Blogs     services.BlogStore
	Users     services.UserStore
	AccessLog io.Writer
}

func New(o Options) *fiber.App {
	if o.AccessLog == nil {
		o.AccessLog = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:      "blogs-api",
		ErrorHandler: controllers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: o.AccessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: o.Config.CORSOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	routes.Register(app, routes.Deps{
		Blogs: &controllers.BlogController{
			Service: services.NewBlogService(o.Blogs),
			Timeout: o.Config.RequestTimeout,
		},
		Auth: &controllers.AuthController{
			Service: services.NewAuthService(o.Users, o.Config.JWTSecret, o.Config.TokenTTL),
			Timeout: o.Config.RequestTimeout,
		},
		JWTSecret: o.Config.JWTSecret,
	})

	return app
}
