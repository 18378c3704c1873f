package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

const ContextSession = "session"

// SessionTTL bounds how long an issued session token is accepted.
const SessionTTL = 12 * time.Hour

// IssueSessionToken signs the staff identity the session is scoped to.
// It identifies the operator; it does not authenticate anyone.
func IssueSessionToken(secret string, staff models.Staff, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  staff.ID,
		"name": staff.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// SessionMiddleware turns the bearer token into a session.Session for
// the handlers below it.
func SessionMiddleware(cfg *config.Config, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "missing session token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "expected a bearer token")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "invalid session token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_claims", "invalid session token")
			return
		}

		staffID, ok := claims["sub"].(float64)
		if !ok || staffID <= 0 {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload", "invalid session token")
			return
		}
		name, _ := claims["name"].(string)

		c.Set(ContextSession, session.New(models.Staff{ID: int64(staffID), Name: name}, loc))
		c.Next()
	}
}

// CurrentSession returns the request session. Handlers behind
// SessionMiddleware always have one.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
