package authctx

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const localsUserID = "user_id"

var ErrNoIdentity = errors.New("token carries no user id")

// Claims accepts the id under "id" (tokens issued by sign in), "uid", or the
// standard subject.
type Claims struct {
	ID    string `json:"id,omitempty"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) UserID() string {
	switch {
	case c.ID != "":
		return c.ID
	case c.UID != "":
		return c.UID
	default:
		return c.Subject
	}
}

func Sign(secret, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    userID,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Parse verifies an HS256 token against secret and returns the user id it names.
func Parse(secret, tokenStr string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	uid := claims.UserID()
	if uid == "" {
		return "", ErrNoIdentity
	}
	return uid, nil
}

func SetUserID(c *fiber.Ctx, uid string) {
	c.Locals(localsUserID, uid)
}

// UserIDFrom reads the caller set by the auth middleware.
func UserIDFrom(c *fiber.Ctx) (string, bool) {
	uid, ok := c.Locals(localsUserID).(string)
	return uid, ok && uid != ""
}
