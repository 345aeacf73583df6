package http

import (
	"errors"
	"net/http"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	requestIDKey    = "request_id"
	memberKey       = "member"
	requestIDHeader = "X-Request-ID"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}

// MemberAuth resolves the requesting member from HTTP basic credentials
// (email and password) and stores it on the context.
func MemberAuth(members repository.MemberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok || email == "" {
			abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "missing credentials")
			return
		}

		member, err := members.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, domain.ErrMemberNotFound) {
			abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			abortWithError(c, err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)) != nil {
			abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "invalid credentials")
			return
		}

		c.Set(memberKey, domain.Member{ID: member.ID, Email: member.Email})
		c.Next()
	}
}

func memberFrom(c *gin.Context) (domain.Member, bool) {
	v, ok := c.Get(memberKey)
	if !ok {
		return domain.Member{}, false
	}
	m, ok := v.(domain.Member)
	return m, ok
}
