package middleware

import (
	"regexp"
	"strings"

	"filmpeek/pkg/response"
	"filmpeek/util"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware extracts the bearer token and puts the verified user id
// in Locals. A missing token is 401, a bad one is 403, clients rely on
// the distinction.
func AuthMiddleware(c *fiber.Ctx) error {
	accessToken := c.Get("Authorization", "")
	strArr := strings.Split(accessToken, " ")
	if len(strArr) == 2 {
		accessToken = strArr[1]
	} else {
		accessToken = ""
	}

	if accessToken == "" {
		return response.ResponseError(c, response.AuthenticationRequired, fiber.StatusUnauthorized)
	}

	token, claims, err := util.VerifyToken(accessToken)
	if err != nil || token == nil || claims == nil || claims.UserId == "" {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusForbidden)
	}

	c.Locals("accessToken", accessToken)
	c.Locals("userId", claims.UserId)
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
