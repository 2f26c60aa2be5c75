package controller

import (
	"net/http"
	"strconv"

	"toy-store-backend/internal/dto"
	"toy-store-backend/internal/middleware"
	"toy-store-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	Service *service.ProductService
	Logger  *zap.Logger
}

func NewProductController(s *service.ProductService, logger *zap.Logger) *ProductController {
	return &ProductController{Service: s, Logger: logger}
}

// GET /api/products
func (ctl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ctl.Service.GetPage(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/products/:id
func (ctl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctl.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// POST /api/products — admin
func (ctl *ProductController) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := ctl.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Producto creado correctamente",
		"data":    product,
	})
}

// PUT /api/products/:id — admin
func (ctl *ProductController) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := ctl.Service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Producto actualizado correctamente",
		"data":    product,
	})
}

// DELETE /api/products/:id — admin
func (ctl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctl.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado correctamente"})
}

// PATCH /api/products/:id/stock — admin
func (ctl *ProductController) UpdateProductStock(c *gin.Context) {
	var req dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	product, err := ctl.Service.SetStock(c.Request.Context(), middleware.Principal(c), c.Param("id"), *req.Stock)
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock actualizado correctamente",
		"data":    product,
	})
}

// GET /api/products/:id/stock-history — admin
func (ctl *ProductController) GetStockHistory(c *gin.Context) {
	history, err := ctl.Service.StockHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, ctl.Logger, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
