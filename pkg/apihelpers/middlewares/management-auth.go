package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwthandling "github.com/rcsa-framework/rcsa-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderInstanceID    = "X-Instance-ID"
)

// ManagementAuthMiddleware validates the management user token and checks
// that the instanceID it carries is served by this deployment.
func ManagementAuthMiddleware(tokenSignKey string, allowedInstanceIDs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		validateManagementUser(c, tokenSignKey, allowedInstanceIDs)
	}
}

func validateManagementUser(c *gin.Context, tokenSignKey string, allowedInstanceIDs []string) {
	token, err := extractToken(c)
	if err != nil {
		slog.Warn("no Authorization token found")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	// Parse and validate token
	parsedToken, ok, err := jwthandling.ValidateManagementUserToken(token, tokenSignKey)
	if err != nil || !ok {
		slog.Warn("token validation failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
		c.Abort()
		return
	}

	// Check if the instanceID is allowed
	if !isInstanceAllowed(parsedToken.InstanceID, allowedInstanceIDs) {
		slog.Warn("instanceID not allowed", slog.String("instanceID", parsedToken.InstanceID), slog.String("path", c.Request.URL.Path))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
		c.Abort()
		return
	}
	c.Set("validatedToken", parsedToken)
}

// GetAndValidateManagementUserJWT validates the token without checking
// the instanceID, combine with IsInstanceIDInJWTAllowed where needed.
func GetAndValidateManagementUserJWT(tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			slog.Warn("no Authorization token found")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		parsedToken, ok, err := jwthandling.ValidateManagementUserToken(token, tokenSignKey)
		if err != nil || !ok {
			slog.Warn("token validation failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
			c.Abort()
			return
		}
		c.Set("validatedToken", parsedToken)
	}
}

// RequireRole aborts the request when the token role is not one of the
// listed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parsedToken, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validatedToken not found in context"})
			return
		}

		role := parsedToken.(*jwthandling.ManagementUserClaims).Role
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		slog.Warn("role not allowed", slog.String("role", role), slog.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not allowed"})
	}
}

func extractToken(c *gin.Context) (string, error) {
	req := c.Request

	var token string
	tokens, ok := req.Header[HeaderAuthorization]
	if ok && len(tokens) > 0 {
		token = tokens[0]
		token = strings.TrimPrefix(token, "Bearer ")
		if len(token) == 0 {
			return token, errors.New("No token found in Authorization header")
		}
	} else {
		return token, errors.New("No Authorization header found")
	}
	return token, nil
}

func isInstanceAllowed(instanceID string, allowedInstanceIDs []string) bool {
	for _, id := range allowedInstanceIDs {
		if id == instanceID {
			return true
		}
	}
	return false
}
