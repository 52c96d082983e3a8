package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lookiva/lookiva_app/internal/apperrors"
	portssvc "github.com/lookiva/lookiva_app/internal/core/ports/services"
	"github.com/lookiva/lookiva_app/internal/dto"
	"github.com/lookiva/lookiva_app/internal/middleware"
)

// productHandler handles HTTP requests related to product batches.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: ps,
	}
}

// registerProductRoutes registers routes related to product batches.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/categories", h.listCategories)
		products.GET("/next-batch-id", h.nextBatchID)
		products.GET("/:batchID", h.getProduct)
		products.PUT("/:batchID", h.updateProduct)
		products.DELETE("/:batchID", h.deleteProduct)
	}
}

// createProduct godoc
// @Summary Create a new product batch
// @Description Registers a batch; an empty batchID gets the next generated identifier for the category
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Batch details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Batch identifier already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate batch", slog.String("batch_id", req.BatchID))
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Batch '%s' already exists", req.BatchID)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating product", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create product in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		}
		return
	}

	logger.Info("Product batch created", slog.String("batch_id", created.BatchID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(*created))
}

// listProducts godoc
// @Summary List all product batches
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponses(products))
}

// listCategories godoc
// @Summary List distinct product categories
// @Tags products
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Router /products/categories [get]
func (h *productHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// nextBatchID godoc
// @Summary Suggest the next batch identifier
// @Description Advisory only; insertion still enforces uniqueness
// @Tags products
// @Produce  json
// @Param   category query string true "Category (or two-letter prefix)"
// @Success 200 {object} dto.BatchIDSuggestionResponse
// @Failure 400 {object} map[string]string "Missing category"
// @Failure 500 {object} map[string]string "Failed to generate batch identifier"
// @Router /products/next-batch-id [get]
func (h *productHandler) nextBatchID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category query parameter is required"})
		return
	}

	batchID, err := h.productService.GenerateBatchID(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to generate batch identifier", slog.String("category", category), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate batch identifier"})
		return
	}
	c.JSON(http.StatusOK, dto.BatchIDSuggestionResponse{BatchID: batchID})
}

// getProduct godoc
// @Summary Get a product batch
// @Tags products
// @Produce  json
// @Param   batchID path string true "Batch identifier"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/{batchID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	product, err := h.productService.GetProduct(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Batch '%s' not found", batchID)})
		} else {
			logger.Error("Failed to get product", slog.String("batch_id", batchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(*product))
}

// updateProduct godoc
// @Summary Update a product batch
// @Description Applies the provided fields; omitted fields are left unchanged
// @Tags products
// @Accept  json
// @Produce  json
// @Param   batchID path string true "Batch identifier"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Router /products/{batchID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.productService.UpdateProduct(c.Request.Context(), batchID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Batch '%s' not found", batchID)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update product", slog.String("batch_id", batchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}

	logger.Info("Product batch updated", slog.String("batch_id", batchID))
	c.JSON(http.StatusOK, dto.ToProductResponse(*updated))
}

// deleteProduct godoc
// @Summary Delete a product batch
// @Description Only batches without purchase or sale entries can be deleted
// @Tags products
// @Produce  json
// @Param   batchID path string true "Batch identifier"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 409 {object} map[string]string "Batch still referenced by transactions"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Router /products/{batchID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	err := h.productService.DeleteProduct(c.Request.Context(), batchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Batch '%s' not found", batchID)})
		} else if errors.Is(err, apperrors.ErrRefIntegrity) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Batch '%s' still has purchase or sale entries", batchID)})
		} else {
			logger.Error("Failed to delete product", slog.String("batch_id", batchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		}
		return
	}

	logger.Info("Product batch deleted", slog.String("batch_id", batchID))
	c.Status(http.StatusNoContent)
}
