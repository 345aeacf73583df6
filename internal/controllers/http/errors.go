package http

import (
	"errors"
	"net/http"

	"cart-service/internal/domain"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Code      string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeUnauthorized     = "UNAUTHORIZED"
	codeOrderNotFound    = "ORDER_NOT_FOUND"
	codeCartItemNotFound = "CART_ITEM_NOT_FOUND"
	codeIllegalMember    = "ILLEGAL_MEMBER"
	codeInvalidOrder     = "INVALID_ORDER"
	codeInternal         = "INTERNAL_ERROR"
)

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, codeOrderNotFound
	case errors.Is(err, domain.ErrCartItemNotFound):
		return http.StatusNotFound, codeCartItemNotFound
	case errors.Is(err, domain.ErrIllegalMember):
		return http.StatusForbidden, codeIllegalMember
	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrPriceMismatch):
		return http.StatusBadRequest, codeInvalidOrder
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// abortWithError writes the stable error body for err. Server errors never
// expose the underlying message.
func abortWithError(c *gin.Context, err error) {
	status, code := statusFor(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: msg, RequestID: c.GetString(requestIDKey)})
}

func abortWithStatus(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: msg, RequestID: c.GetString(requestIDKey)})
}
