package token

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

func secret() []byte {
	if s := os.Getenv("API_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("mindhub-dev-secret")
}

func lifespanHours() int {
	if v := os.Getenv("TOKEN_HOUR_LIFESPAN"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil {
			return hours
		}
	}
	return 24
}

// Generate issues an HS256 bearer token carrying the authenticated
// identity and its derived role.
func Generate(email, name, roleName string) (string, error) {
	claims := jwt.MapClaims{
		"authorized": true,
		"email":      email,
		"name":       name,
		"role":       roleName,
		"exp":        time.Now().Add(time.Duration(lifespanHours()) * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

func extractRaw(c *gin.Context) string {
	bearer := c.GetHeader("Authorization")
	if len(strings.Split(bearer, " ")) == 2 {
		return strings.Split(bearer, " ")[1]
	}
	return c.Query("token")
}

func parse(c *gin.Context) (jwt.MapClaims, error) {
	raw := extractRaw(c)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

/*
* Gate private routes: reject missing or invalid tokens, otherwise stash
* the identity claims on the context for handlers downstream.
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parse(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "failed", "error": err.Error()})
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		name, _ := claims["name"].(string)
		roleName, _ := claims["role"].(string)
		c.Set("email", email)
		c.Set("name", name)
		c.Set("role", roleName)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// JWTAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString("role")
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"status": "failed", "error": "insufficient role"})
		c.Abort()
	}
}
