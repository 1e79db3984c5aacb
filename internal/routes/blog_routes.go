package routes

import (
	"github.com/gofiber/fiber/v2"

	"blogs-api/internal/middleware"
)

// SetupRoutesBlog mounts the blog API under /blogs. /search is registered
// before /:id so it is not captured as an id.
func SetupRoutesBlog(app *fiber.App, d Deps) {
	auth := middleware.JWTAuth(d.JWTSecret)
	blogs := app.Group("/blogs")

	blogs.Get("/search", d.Blogs.GetBlogsBySearch)
	blogs.Get("/", d.Blogs.GetBlogs)
	blogs.Get("/:id", d.Blogs.GetBlog)
	blogs.Post("/", auth, d.Blogs.CreateBlog)
	blogs.Patch("/:id", auth, d.Blogs.UpdateBlog)
	blogs.Delete("/:id", auth, d.Blogs.DeleteBlog)
	blogs.Patch("/:id/likeBlog", auth, d.Blogs.LikeBlog)
}
