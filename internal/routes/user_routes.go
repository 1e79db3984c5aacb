package routes

import "github.com/gofiber/fiber/v2"

func SetupRoutesUser(app *fiber.App, d Deps) {
	user := app.Group("/user")
	user.Post("/signup", d.Auth.SignUp)
	user.Post("/signin", d.Auth.SignIn)
}
