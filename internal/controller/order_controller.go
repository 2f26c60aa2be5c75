package controller

import (
	"net/http"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderController struct {
	Service *service.OrderService
	Logger  *zap.Logger
}

func NewOrderController(s *service.OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{Service: s, Logger: logger}
}

// POST /api/orders
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := ctl.Service.CreateOrder(c.Request.Context(), middleware.Principal(c), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Orden creada correctamente",
		"data":    order,
	})
}

// GET /api/orders/my
func (ctl *OrderController) GetMyOrders(c *gin.Context) {
	orders, err := ctl.Service.GetMyOrders(c.Request.Context(), middleware.Principal(c))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /api/orders/:id
func (ctl *OrderController) GetOrderByID(c *gin.Context) {
	order, err := ctl.Service.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders — admin
func (ctl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctl.Service.GetAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /api/orders/:id/cancel
func (ctl *OrderController) CancelOrder(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := ctl.Service.RequestCancel(c.Request.Context(), middleware.Principal(c), c.Param("id"), req.CancelReason)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "El pedido de cancelación fue enviado, queda pendiente de confirmación del admin",
		"data":    order,
	})
}

// POST /api/orders/:id/return
func (ctl *OrderController) ReturnOrder(c *gin.Context) {
	var req dto.ReturnOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := ctl.Service.RequestReturn(c.Request.Context(), middleware.Principal(c), c.Param("id"), req.ReturnReason, req.ReturnBankAccount)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "El pedido de devolución fue enviado, queda pendiente de confirmación del admin",
		"data":    order,
	})
}

// PUT /api/orders/:id/status — admin
func (ctl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := ctl.Service.UpdateOrderStatus(c.Request.Context(), middleware.Principal(c), c.Param("id"), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orden actualizada correctamente",
		"data":    order,
	})
}
