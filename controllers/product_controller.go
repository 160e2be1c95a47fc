package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"trendkart/models"
	"trendkart/repositories"
	"trendkart/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// GetProducts godoc
// @Summary List products
// @Description Filter, sort, and paginate the product catalog
// @Tags Products
// @Produce json
// @Param search query string false "Search in title and description"
// @Param category query string false "Filter by category"
// @Param brand query string false "Filter by brand"
// @Param min_price query int false "Minimum price (INR)"
// @Param max_price query int false "Maximum price (INR)"
// @Param sort query string false "Sort key" Enums(newest, price-asc, price-desc, name-asc, name-desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	minPrice, _ := strconv.Atoi(c.Query("min_price"))
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))

	filter := repositories.ProductFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		Brand:    strings.TrimSpace(c.Query("brand")),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     strings.TrimSpace(c.DefaultQuery("sort", "newest")),
		Page:     page,
		Limit:    limit,
	}

	resp, err := ctrl.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list products"})
		return
	}

	c.JSON(200, resp)
}

// GetProductBySlug godoc
// @Summary Get product
// @Description Get product details by slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{slug} [get]
func (ctrl *ProductController) GetProductBySlug(c *gin.Context) {
	product, err := ctrl.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// GetCategories godoc
// @Summary List categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": models.Categories})
}

// GetBrands godoc
// @Summary List brands
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /brands [get]
func (ctrl *ProductController) GetBrands(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Brands retrieved", "data": models.Brands})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.catalog.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// UpdateProduct godoc
// @Summary Update product
// @Description Update product fields (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Product fields"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// DeleteProduct godoc
// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product deleted permanently"})
}
