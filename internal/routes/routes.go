package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogs-api/internal/controllers"
)

type Deps struct {
	Blogs     *controllers.BlogController
	Auth      *controllers.AuthController
	JWTSecret string
}

func Register(app *fiber.App, d Deps) {
	SetupRoutesBlog(app, d)
	SetupRoutesUser(app, d)
}
