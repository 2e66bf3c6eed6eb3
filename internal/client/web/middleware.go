package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stylocoin/dashboard/internal/client/client"
	"github.com/stylocoin/dashboard/internal/client/guard"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/logging"
)

const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one. The id is
// echoed back and forwarded to the backend with every call the request makes.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(client.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(client.RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(client.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// Logging logs every request once it has been served, at a level that
// follows the status code.
func Logging(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"response_size", c.Writer.Size(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			attrs = append(attrs, "query", q)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "error", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.Error(ctx, "request failed - server error", attrs...)
		case status >= 400:
			log.Warn(ctx, "request failed - client error", attrs...)
		default:
			log.Info(ctx, "request completed", attrs...)
		}
	}
}

// Recovery turns a panic into a 500 and logs it with the request id.
func Recovery(log logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "panic recovered",
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

// ProvideAuth makes auth available to handlers through services.AuthFrom.
func ProvideAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(services.WithAuth(c.Request.Context(), auth))
		c.Next()
	}
}

// Guard runs policy on a fresh mount for each request.
func Guard(policy guard.Func) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := services.AuthFrom(c.Request.Context())
		d := guard.NewMount(policy).Decide(guard.FromState(auth.Snapshot()))

		switch d.Kind {
		case guard.Loading:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"state": "loading"})
		case guard.Redirect:
			c.Redirect(http.StatusFound, d.Target)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireSession lets signed-in users through.
func RequireSession() gin.HandlerFunc { return Guard(guard.Protected) }

// RequireAdmin lets admins through and sends members to their home page.
func RequireAdmin() gin.HandlerFunc { return Guard(guard.AdminOnly) }
