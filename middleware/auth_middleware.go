package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sujalreset-source/streaming-backend/logger"
)

// AuthMiddleware validates the bearer token and places the caller's
// identity claims on the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid authorization header format"})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn(logger.EventInvalidToken, "Rejected bearer token", logger.Fields("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token claims"})
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing user ID in token"})
			return
		}

		role, _ := claims["role"].(string)
		artistID, _ := claims["artist_id"].(string)

		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Set("artist_id", artistID)

		c.Next()
	}
}

// RoleMiddleware rejects callers lacking the required role.
func RoleMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		userRole, ok := role.(string)
		if !exists || !ok || userRole != requiredRole {
			logger.Warn(logger.EventAccessDenied, "Insufficient permissions", logger.Fields(
				"user_id", c.GetString("user_id"),
				"required_role", requiredRole,
				"ip", c.ClientIP(),
			))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "access denied, admins only"})
			return
		}
		c.Next()
	}
}

// AdminOnly is a convenience wrapper for RoleMiddleware("admin").
func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware("admin")
}
