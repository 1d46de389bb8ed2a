package handler

import (
	"net/http"
	"os"
	"strings"
	"time"

	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("dev-only-secret")
}

// GenerateToken mints a signed session token for a user. Login itself lives
// outside this service; the operator CLI and tests use this to issue tokens.
func GenerateToken(u *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"name":  u.Name,
		"role":  string(u.Role),
		"block": u.HostelBlock,
		"room":  u.RoomNumber,
		"exp":   time.Now().Add(config.TokenTTL).Unix(),
		"iss":   config.TokenIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// AuthRequired parses the bearer token and stores the Actor on the request
// context. Every engine call receives this actor explicitly.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token claims"})
			return
		}

		actor := models.Actor{
			ID:          str(claims["sub"]),
			Name:        str(claims["name"]),
			Role:        models.Role(str(claims["role"])),
			HostelBlock: str(claims["block"]),
			RoomNumber:  str(claims["room"]),
		}
		if actor.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token claims"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

// actorFrom returns the Actor placed on the context by AuthRequired.
func actorFrom(c *gin.Context) models.Actor {
	v, _ := c.Get(actorKey)
	actor, _ := v.(models.Actor)
	return actor
}
