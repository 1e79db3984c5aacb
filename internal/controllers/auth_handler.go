package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"blogs-api/dto"
	"blogs-api/internal/services"
)

type AuthController struct {
	Service *services.AuthService
	Timeout time.Duration
}

func authFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "User already exists."})
	case errors.Is(err, services.ErrPasswordMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Passwords don't match."})
	case errors.Is(err, services.ErrMissingFields):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Email and password are required."})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User doesn't exist."})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid credentials"})
	default:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Something went wrong."})
	}
}

// SignUp godoc
// @Summary      Create an account
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignUpDTO  true  "Account"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /user/signup [post]
func (h *AuthController) SignUp(c *fiber.Ctx) error {
	var body dto.SignUpDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.Timeout)
	defer cancel()

	res, err := h.Service.SignUp(ctx, body)
	if err != nil {
		return authFailure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// SignIn godoc
// @Summary      Exchange credentials for a token
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignInDTO  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /user/signin [post]
func (h *AuthController) SignIn(c *fiber.Ctx) error {
	var body dto.SignInDTO
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.Timeout)
	defer cancel()

	res, err := h.Service.SignIn(ctx, body)
	if err != nil {
		return authFailure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}
