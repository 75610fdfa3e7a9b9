package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rhythmicmansion/server/internal/errs"
	"github.com/rhythmicmansion/server/pkg/helpers"
)

const (
	// CtxClaimsKey holds the verified jwt.MapClaims for the request.
	CtxClaimsKey = "claims"
	// CtxEmailKey holds the email claim of the verified assertion.
	CtxEmailKey = "userEmail"
)

// RequireAuth validates the bearer assertion on the Authorization header and
// injects the decoded claims into the Gin context.
//
// Status mapping is part of the wire contract: a missing credential is 401,
// a credential that fails verification (bad signature or expired) is 403.
func RequireAuth(jwtm *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwtm.Verify(token)
		if err != nil {
			// expired vs invalid only matters for the logs
			if errors.Is(err, errs.ErrTokenExpired) {
				logger.WithField("path", c.FullPath()).Debug("rejected expired token")
			} else {
				logger.WithField("path", c.FullPath()).Debug("rejected invalid token")
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Set(CtxEmailKey, helpers.Email(claims))
		c.Next()
	}
}

// RequireOwnEmailParam compares the named path parameter against the asserted
// email. It must be registered after RequireAuth; the context email only
// exists once the presence gate has run and passed.
func RequireOwnEmailParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param(name) != c.GetString(CtxEmailKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// RequireOwnEmailQuery is the query-parameter variant of the ownership gate.
func RequireOwnEmailQuery(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(name) != c.GetString(CtxEmailKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
