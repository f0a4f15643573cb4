package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumecore/api/internal/server/auth"
)

const principalKey = "principal"

// msgUnauthorized is the single response body for every authentication
// failure. The specific reason is logged server-side only, so a caller
// cannot distinguish a missing token from an expired one or from a token
// whose subject no longer exists.
const msgUnauthorized = "Unauthorized"

// authRequired verifies the bearer token, resolves its subject to an
// existing account, and stores the resulting principal in the gin context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if header == "" {
			s.logger.Warn(ctx, "auth failed", "reason", "missing authorization header", "path", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.logger.Warn(ctx, "auth failed", "reason", "malformed authorization header", "path", c.Request.URL.Path)
			abortUnauthorized(c)
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(ctx, "auth failed", "reason", "token rejected", "path", c.Request.URL.Path, "error", err)
			abortUnauthorized(c)
			return
		}

		principal := auth.Principal{UserID: userID}
		if _, err := s.users.GetProfile(ctx, principal); err != nil {
			s.logger.Warn(ctx, "auth failed", "reason", "subject does not resolve", "path", c.Request.URL.Path, "error", err)
			abortUnauthorized(c)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
}

// principalFrom returns the principal stored by authRequired. Handlers
// behind the middleware can rely on it being present.
func principalFrom(c *gin.Context) auth.Principal {
	v, _ := c.Get(principalKey)
	p, _ := v.(auth.Principal)
	return p
}
