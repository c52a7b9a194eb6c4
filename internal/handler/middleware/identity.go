package middleware

import (
	"log/slog"
	"strings"

	"booking-holds/internal/pkg/identity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxUserIDKey = "user_id"

type IdentityMiddleware struct {
	verifier *identity.Verifier
}

func NewIdentityMiddleware(verifier *identity.Verifier) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier}
}

// OptionalIdentity binds a user id to the request when a valid bearer token
// is present. Anonymous bookers are first-class: a missing or invalid token
// never rejects the request, it just leaves the hold unbound.
func (m *IdentityMiddleware) OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		token := strings.TrimSpace(authHeader[len("Bearer "):])
		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			slog.Warn("ignoring unverifiable bearer token", "error", err.Error())
			c.Next()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the bound user id, if any.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
