package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"product_catalog/internal/domain" // Domain models and errors
	"product_catalog/internal/store"  // Persistence interfaces
	"product_catalog/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ProductRequest is the payload for create and update
type ProductRequest struct {
	Name  string  `json:"name" binding:"required,max=100"`       // Name required, at most 100 characters
	Price float64 `json:"price" binding:"required,gt=0,lte=1000"` // Price in (0, 1000]
	Stock int     `json:"stock" binding:"gte=0"`                  // Stock never negative
}

const (
	productListKey  = "products:all"    // Cache key for the full product list
	productKeyBase  = "product:id:"     // Cache key prefix for single products
	productCacheTTL = 60 * time.Second // Cached reads expire after a minute
)

// productKey builds the cache key for a single product
func productKey(id uint) string {
	return productKeyBase + strconv.Itoa(int(id))
}

// invalidateProductCache drops the list cache and the per-product cache
// after any write so subsequent reads see the new state
func invalidateProductCache(rdb *redis.Client, id uint) {
	ctx := context.Background()                     // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb, productListKey) // Invalidate the list cache
	_ = utils.DeleteCache(ctx, rdb, productKey(id)) // Invalidate the per-product cache
}

// ListProductsHandler returns all products
func ListProductsHandler(products store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached []domain.Product // Cached product list
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, productListKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		// If not in cache, fetch from the store
		list, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"}) // Return on error
			return
		}
		_ = utils.SetCache(ctx, rdb, productListKey, list, productCacheTTL) // Cache the list
		c.JSON(http.StatusOK, list)                                         // Return the list
	}
}

// GetProductHandler returns a single product by id
func GetProductHandler(products store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		ctx := context.Background() // Context for Redis operations
		var product domain.Product // Product struct to hold data
		// If cached data found, return it
		found, cacheErr := utils.GetCache(ctx, rdb, productKey(uint(id)), &product)
		if cacheErr == nil && found {
			c.JSON(http.StatusOK, product) // Return cached product
			return
		}
		// If not in cache, fetch from the store
		p, err := products.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Return not found if the product doesn't exist
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"}) // Return on error
			return
		}
		_ = utils.SetCache(ctx, rdb, productKey(p.ID), p, productCacheTTL) // Cache the product
		c.JSON(http.StatusOK, p)                                           // Return the product
	}
}

// CreateProductHandler creates a product and assigns it a new id
func CreateProductHandler(products store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If validation fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
			return
		}
		// Build the product from the validated input
		product := domain.Product{Name: req.Name, Price: req.Price, Stock: req.Stock}
		// Attempt to create the product in the store
		if err := products.Create(c.Request.Context(), &product); err != nil {
			logrus.WithFields(logrus.Fields{
				"name":  req.Name,    // Product name
				"error": err.Error(), // Error message
			}).Error("Failed to create product") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,   // Assigned product id
			"name":       product.Name, // Product name
		}).Info("Product created") // Log product creation
		invalidateProductCache(rdb, product.ID)                            // Invalidate caches
		c.Header("Location", "/api/products/"+strconv.Itoa(int(product.ID))) // Location of the new resource
		c.JSON(http.StatusCreated, product)                                // Return the created product
	}
}

// UpdateProductHandler replaces a product's name, price and stock
func UpdateProductHandler(products store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		var req ProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If validation fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
			return
		}
		// Full replace: every field comes from the request
		product := domain.Product{ID: uint(id), Name: req.Name, Price: req.Price, Stock: req.Stock}
		// Attempt to update the product in the store
		if err := products.Update(c.Request.Context(), &product); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Return not found if the product doesn't exist
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"product_id": id,          // Product id
				"error":      err.Error(), // Error message
			}).Error("Failed to update product") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		invalidateProductCache(rdb, product.ID) // Invalidate caches
		c.JSON(http.StatusOK, product)          // Return the updated product
	}
}

// DeleteProductHandler removes a product by id
func DeleteProductHandler(products store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse id from path
		if err != nil {
			// If id is not numeric, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		// Attempt to delete the product from the store
		if err := products.Delete(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Return not found if the product doesn't exist
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"product_id": id,          // Product id
				"error":      err.Error(), // Error message
			}).Error("Failed to delete product") // Log failure
			// Return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		invalidateProductCache(rdb, uint(id)) // Invalidate caches
		c.Status(http.StatusNoContent)        // No body on successful delete
	}
}
