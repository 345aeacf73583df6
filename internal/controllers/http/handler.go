package http

import (
	"context"
	"net/http"
	"strconv"

	"cart-service/internal/dto"
	"cart-service/internal/infra/cache"
	"cart-service/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service *services.OrderService
	cache   cache.OrderCache
	logger  *zap.Logger
}

// NewHandler builds the order handlers. c may be nil to serve lists straight
// from the service.
func NewHandler(s *services.OrderService, c cache.OrderCache, logger *zap.Logger) *Handler {
	return &Handler{service: s, cache: c, logger: logger}
}

func (h *Handler) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	orders := r.Group("/orders", auth)
	orders.POST("", h.CreateOrder)
	orders.GET("", h.GetOrders)
	orders.GET("/:orderId", h.GetOrder)
	orders.DELETE("/:orderId", h.RemoveOrder)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	member, ok := memberFrom(c)
	if !ok {
		abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "missing member")
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}

	resp, err := h.service.Add(c.Request.Context(), member, req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidate(c.Request.Context(), member.ID)

	c.Header("Location", "/orders/"+strconv.FormatUint(resp.OrderID, 10))
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetOrder(c *gin.Context) {
	member, ok := memberFrom(c)
	if !ok {
		abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "missing member")
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	resp, err := h.service.FindByID(c.Request.Context(), member, orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetOrders(c *gin.Context) {
	member, ok := memberFrom(c)
	if !ok {
		abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "missing member")
		return
	}

	load := func(ctx context.Context) (*dto.OrdersResponse, error) {
		return h.service.FindAll(ctx, member)
	}

	var (
		resp *dto.OrdersResponse
		err  error
	)
	if h.cache != nil {
		resp, err = h.cache.GetOrLoad(c.Request.Context(), member.ID, load)
	} else {
		resp, err = load(c.Request.Context())
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RemoveOrder(c *gin.Context) {
	member, ok := memberFrom(c)
	if !ok {
		abortWithStatus(c, http.StatusUnauthorized, codeUnauthorized, "missing member")
		return
	}
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), member, orderID); err != nil {
		abortWithError(c, err)
		return
	}
	h.invalidate(c.Request.Context(), member.ID)
	c.Status(http.StatusNoContent)
}

func (h *Handler) invalidate(ctx context.Context, memberID uint64) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, memberID)
	}
}

func orderIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil || id == 0 {
		abortWithStatus(c, http.StatusBadRequest, codeInvalidRequest, "orderId must be a positive integer")
		return 0, false
	}
	return id, true
}
