package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"s3-audio-translate/internal/app/session"
)

const (
	sessionIDKey     = "session_id"
	sessionRecordKey = "session_record"
	sessionStoreKey  = "session_store"
)

// SessionConfig configures the session cookie
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// DefaultSessionConfig returns the cookie settings used by the app server
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		CookieName: "atx_session",
		TTL:        session.DefaultTTL,
	}
}

// Sessions loads the interaction record for the request's cookie, starting a
// fresh one when the cookie is missing or its record has expired.
func Sessions(store session.Store, config SessionConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := session.Record{Session: session.New()}

		id, err := c.Cookie(config.CookieName)
		if err == nil && id != "" {
			loaded, found, err := store.Load(c.Request.Context(), id)
			if err != nil {
				logger.Error("failed to load session",
					zap.Error(err),
					zap.String("request_id", c.GetString(RequestIDKey)),
				)
				HandleError(c, err)
				return
			}
			if found {
				rec = loaded
			} else {
				id = ""
			}
		}

		if id == "" {
			id = uuid.New().String()
		}

		http.SetCookie(c.Writer, &http.Cookie{
			Name:     config.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(config.TTL.Seconds()),
			HttpOnly: true,
			Secure:   config.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		c.Set(sessionIDKey, id)
		c.Set(sessionRecordKey, rec)
		c.Set(sessionStoreKey, store)
		c.Next()
	}
}

// CurrentRecord returns the record loaded by Sessions
func CurrentRecord(c *gin.Context) session.Record {
	if rec, ok := c.Get(sessionRecordKey); ok {
		return rec.(session.Record)
	}
	return session.Record{Session: session.New()}
}

// SaveRecord persists rec for the request's session
func SaveRecord(c *gin.Context, rec session.Record) error {
	c.Set(sessionRecordKey, rec)

	store, ok := c.Get(sessionStoreKey)
	if !ok {
		return nil
	}
	return store.(session.Store).Save(c.Request.Context(), c.GetString(sessionIDKey), rec)
}

// RequireAuth blocks workflow routes for unauthenticated sessions. JSON
// clients receive 401; browsers are sent back to the page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.RequireAuthenticated(CurrentRecord(c).Session); err != nil {
			if WantsJSON(c) {
				HandleError(c, err)
				return
			}
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
