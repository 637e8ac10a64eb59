package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/domain"
	"storefront-api/internal/repository"
)

type searchRequest struct {
	Term string `json:"term"`
	Page int64  `json:"page"`
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type productRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	PurchasePrice int64  `json:"purchase_price"`
	SellingPrice  int64  `json:"selling_price"`
	Stock         int64  `json:"stock"`
	Discount      int64  `json:"discount"`
	Image         string `json:"image"`
	CategoryID    int64  `json:"category_id" binding:"required"`
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list categories failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

func (h *Handler) getCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	category, err := h.catalog.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		h.logger.WithError(err).Error("get category failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
}

func (h *Handler) searchCategories(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	categories, page, err := h.catalog.SearchCategories(c.Request.Context(), req.Term, req.Page)
	if err != nil {
		h.logger.WithError(err).Error("search categories failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories, "paginate": page})
}

func (h *Handler) createCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.catalog.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.logger.WithError(err).Error("create category failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

func (h *Handler) updateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.catalog.UpdateCategory(c.Request.Context(), id, req.Name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		h.logger.WithError(err).Error("update category failed")
		fail(c, http.StatusBadRequest, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "category updated"})
}

func (h *Handler) deleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		h.logger.WithError(err).Error("delete category failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "category deleted"})
}

func (h *Handler) searchProducts(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	products, page, err := h.catalog.SearchProducts(c.Request.Context(), req.Term, req.Page)
	if err != nil {
		h.logger.WithError(err).Error("search products failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "paginate": page})
}

func (h *Handler) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Stock:         req.Stock,
		Discount:      req.Discount,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "category not found")
			return
		}
		h.logger.WithError(err).Error("create product failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.catalog.UpdateProduct(c.Request.Context(), domain.Product{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Stock:         req.Stock,
		Discount:      req.Discount,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.WithError(err).Error("update product failed")
		fail(c, http.StatusBadRequest, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product updated"})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.WithError(err).Error("delete product failed")
		fail(c, http.StatusInternalServerError, "request failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "product deleted"})
}
