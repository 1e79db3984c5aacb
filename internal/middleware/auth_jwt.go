package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"blogs-api/dto"
	"blogs-api/internal/authctx"
)

// AuthResult is either Authenticated or Rejected.
type AuthResult interface {
	isAuthResult()
}

type Authenticated struct {
	UserID string
}

type Rejected struct {
	Reason string
}

func (Authenticated) isAuthResult() {}
func (Rejected) isAuthResult()      {}

// bearerToken returns the second space-separated field of the header.
func bearerToken(header string) (string, bool) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", false
	}
	return fields[1], true
}

func Authenticate(header, secret string) AuthResult {
	tok, ok := bearerToken(header)
	if !ok {
		return Rejected{Reason: "missing bearer token"}
	}
	uid, err := authctx.Parse(secret, tok)
	if err != nil {
		return Rejected{Reason: "invalid token: " + err.Error()}
	}
	return Authenticated{UserID: uid}
}

// JWTAuth lets a request through only with a valid bearer token; anything
// else is answered with 401.
func JWTAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch r := Authenticate(c.Get(fiber.HeaderAuthorization), secret).(type) {
		case Authenticated:
			authctx.SetUserID(c, r.UserID)
			return c.Next()
		case Rejected:
			log.Warnf("auth rejected %s %s: %s", c.Method(), c.Path(), r.Reason)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Unauthenticated"})
		default:
			return fiber.ErrUnauthorized
		}
	}
}
