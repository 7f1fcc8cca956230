package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"travel-concierge/api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// userClaims pulls the authenticated claims the auth middleware stored on the
// request context.
func userClaims(c *gin.Context) (*models.UserClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	claims, ok := user.(*models.UserClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return nil, false
	}
	return claims, true
}

// authenticateSSE validates the JWT passed as a query parameter. EventSource
// cannot set an Authorization header, so SSE auth rides on ?token=.
func authenticateSSE(c *gin.Context) (*models.UserClaims, error) {
	tokenString := c.DefaultQuery("token", "")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
		c.Abort()
		return nil, fmt.Errorf("missing or invalid token")
	}

	claims := &models.UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		secret := os.Getenv("AUTH_JWT_SECRET")
		if secret == "" {
			return nil, fmt.Errorf("AUTH_JWT_SECRET environment variable not set")
		}
		return []byte(secret), nil
	})

	if err != nil {
		log.Printf("Error parsing claims: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
		c.Abort()
		return nil, err
	}

	if !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		c.Abort()
		return nil, fmt.Errorf("invalid token")
	}

	if claims.Issuer != os.Getenv("AUTH_ISSUER_URL") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token issuer"})
		c.Abort()
		return nil, fmt.Errorf("invalid token issuer")
	}
	return claims, nil
}
