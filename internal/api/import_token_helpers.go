package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	importTokenPurpose    = "transaction-import"
	defaultImportTokenTTL = 24 * time.Hour
	maxImportTokenTTL     = 30 * 24 * time.Hour
)

type importTokenClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// buildImportToken mints the bearer token the spreadsheet-import job uses
// against /api/import/transactions.
func (handler *Handler) buildImportToken(ttl time.Duration) (string, error) {
	if ttl <= 0 || ttl > maxImportTokenTTL {
		ttl = defaultImportTokenTTL
	}
	now := time.Now()

	claims := importTokenClaims{
		Purpose: importTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseImportToken(rawToken string) (*importTokenClaims, error) {
	claims := &importTokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Purpose != importTokenPurpose {
		return nil, fmt.Errorf("wrong token purpose")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, fmt.Errorf("token expired")
	}
	return claims, nil
}

// ImportTokenRequired guards the import surface with the collaborator's
// bearer token instead of an employee session.
func (handler *Handler) ImportTokenRequired(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	rawToken, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "import token required")
	}
	if _, err := handler.parseImportToken(strings.TrimSpace(rawToken)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid import token")
	}
	return c.Next()
}
