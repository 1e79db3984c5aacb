package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"blogs-api/dto"
	"blogs-api/internal/authctx"
	"blogs-api/internal/services"
)

type BlogController struct {
	Service *services.BlogService
	Timeout time.Duration
}

func (h *BlogController) ctx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), h.Timeout)
}

// Store failures are answered with 404 and the underlying message; clients
// of this API already depend on that status.
func storeFailure(c *fiber.Ctx, err error) error {
	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: err.Error()})
}

// GetBlogs godoc
// @Summary      List blogs
// @Description  Newest first, 8 per page.
// @Tags         blogs
// @Produce      json
// @Param        page  query     int  false  "Page number (1-based)"
// @Success      200   {object}  dto.BlogPageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /blogs [get]
func (h *BlogController) GetBlogs(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Service.List(ctx, c.QueryInt("page", 1))
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// GetBlogsBySearch godoc
// @Summary      Search blogs
// @Description  Case-insensitive substring match on title or any tag.
// @Tags         blogs
// @Produce      json
// @Param        searchQuery  query     string  false  "Text to look for"
// @Success      200          {object}  dto.BlogSearchResponse
// @Failure      404          {object}  dto.MessageResponse
// @Router       /blogs/search [get]
func (h *BlogController) GetBlogsBySearch(c *fiber.Ctx) error {
	ctx, cancel := h.ctx(c)
	defer cancel()

	items, err := h.Service.Search(ctx, c.Query("searchQuery"))
	if err != nil {
		return storeFailure(c, err)
	}
	return c.JSON(dto.BlogSearchResponse{Data: items})
}

// GetBlog godoc
// @Summary      Get a blog
// @Description  Responds with null when no blog has the id.
// @Tags         blogs
// @Produce      json
// @Param        id   path      string  true  "Blog ID (hex)"
// @Success      200  {object}  models.Blog
// @Failure      404  {object}  dto.MessageResponse
// @Router       /blogs/{id} [get]
func (h *BlogController) GetBlog(c *fiber.Ctx) error {
	idHex := c.Params("id")
	id, err := services.ParseID(idHex)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "No blog with id: " + idHex})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	b, err := h.Service.Get(ctx, id)
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(b)
}

// CreateBlog godoc
// @Summary      Create a blog
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBlogDTO  true  "Blog"
// @Success      201   {object}  models.Blog
// @Failure      401   {object}  dto.MessageResponse
// @Failure      409   {object}  dto.MessageResponse
// @Router       /blogs [post]
func (h *BlogController) CreateBlog(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Unauthenticated"})
	}
	var body dto.CreateBlogDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{Message: err.Error()})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	b, err := h.Service.Create(ctx, body, uid)
	if err != nil {
		log.Errorf("create blog: %v", err)
		return c.Status(fiber.StatusConflict).JSON(dto.MessageResponse{Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// UpdateBlog godoc
// @Summary      Update a blog
// @Description  Sets the supplied fields and echoes the payload.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Blog ID (hex)"
// @Param        body  body      dto.UpdateBlogDTO  true  "Fields to set"
// @Success      200   {object}  dto.UpdatedBlogResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.MessageResponse
// @Failure      404   {string}  string
// @Router       /blogs/{id} [patch]
func (h *BlogController) UpdateBlog(c *fiber.Ctx) error {
	idHex := c.Params("id")
	id, err := services.ParseID(idHex)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("No blog with id: " + idHex)
	}

	var body dto.UpdateBlogDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "invalid body"})
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	res, err := h.Service.Update(ctx, id, body)
	if err != nil {
		return storeFailure(c, err)
	}
	return c.JSON(res)
}

// DeleteBlog godoc
// @Summary      Delete a blog
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (hex)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {string}  string
// @Router       /blogs/{id} [delete]
func (h *BlogController) DeleteBlog(c *fiber.Ctx) error {
	idHex := c.Params("id")
	id, err := services.ParseID(idHex)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("No blog with id: " + idHex)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.Service.Delete(ctx, id); err != nil {
		return storeFailure(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Blog deleted successfully."})
}

// LikeBlog godoc
// @Summary      Toggle the caller's like
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Blog ID (hex)"
// @Success      200  {object}  models.Blog
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {string}  string
// @Router       /blogs/{id}/likeBlog [patch]
func (h *BlogController) LikeBlog(c *fiber.Ctx) error {
	uid, ok := authctx.UserIDFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Unauthenticated"})
	}

	idHex := c.Params("id")
	id, err := services.ParseID(idHex)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("No post with id: " + idHex)
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	b, err := h.Service.ToggleLike(ctx, id, uid)
	if errors.Is(err, services.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Unauthenticated"})
	}
	if err != nil {
		return storeFailure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(b)
}
