package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"livingnest/internal/cache"  // Redis cache helpers
	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Listing defaults: first page, six cards per page, unbounded rent range
const defaultApartmentLimit = 6

// apartmentPage is the cached shape of one listing page
type apartmentPage struct {
	Total      int64              `json:"total"`      // Total matching apartments
	Apartments []domain.Apartment `json:"apartments"` // Current page items
}

// ListApartmentsHandler returns a rent-filtered, paginated apartment page.
// Pagination is zero-based: skip = page * limit.
func ListApartmentsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		page := 0                   // Default page number
		limit := defaultApartmentLimit
		// Check and set page number from query params
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v >= 0 {
				page = v // Set page if valid
			}
		}
		// Check and set limit within bounds
		if l := c.Query("limit"); l != "" {
			if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
				limit = v // Set limit
			}
		}
		minRent := c.Query("minRent") // Lower rent bound, inclusive
		maxRent := c.Query("maxRent") // Upper rent bound, inclusive

		// Create a cache key covering every parameter that shapes the page
		cacheKey := "apartments:min=" + minRent + ":max=" + maxRent +
			":page=" + strconv.Itoa(page) + ":limit=" + strconv.Itoa(limit)
		var cached apartmentPage
		// If cached data found, return it
		found, err := cache.Get(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"total":      cached.Total,      // Total matching apartments
				"apartments": cached.Apartments, // Current page items
				"cached":     true,              // Indicate response is from cache
			})
			return
		}

		query := db.Model(&domain.Apartment{}) // Start building the query
		if v, err := strconv.ParseFloat(minRent, 64); err == nil {
			query = query.Where("rent >= ?", v) // Filter by minimum rent
		}
		if v, err := strconv.ParseFloat(maxRent, 64); err == nil {
			query = query.Where("rent <= ?", v) // Filter by maximum rent
		}
		var total int64 // Total matching count
		// Count everything matching the rent range
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count apartments"})
			return
		}
		var apartments []domain.Apartment // Slice to hold the page
		// Fetch the requested page
		if err := query.Offset(page * limit).Limit(limit).Find(&apartments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch apartments"})
			return
		}
		// Cache the page for future requests
		_ = cache.Set(ctx, rdb, cacheKey, apartmentPage{Total: total, Apartments: apartments}, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{
			"total":      total,      // Total matching apartments
			"apartments": apartments, // Current page items
			"cached":     false,      // Indicate response is not from cache
		})
	}
}

// UpdateApartmentHandler marks an apartment unavailable once a rental
// completes. Flipping a row that is missing or already unavailable reports
// 404; the caller treats that as "already handled", not a hard error.
func UpdateApartmentHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Apartment id from the path
		// Conditional update so a second call modifies zero rows
		res := db.Model(&domain.Apartment{}).
			Where("id = ? AND availability = ?", id, "available").
			Update("availability", "unavailable")
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update apartment"})
			return
		}
		// Zero rows modified means missing or already unavailable
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Apartment not found or already unavailable"})
			return
		}
		// Log the availability flip
		logrus.WithFields(logrus.Fields{
			"apartment_id": id,            // Apartment that was flipped
			"availability": "unavailable", // New state
		}).Info("Apartment marked unavailable")
		// Invalidate listing cache (simple version: delete the first 5 default-filter pages)
		ctx := context.Background()
		for i := 0; i < 5; i++ {
			key := "apartments:min=:max=:page=" + strconv.Itoa(i) + ":limit=" + strconv.Itoa(defaultApartmentLimit)
			_ = cache.Delete(ctx, rdb, key)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Apartment updated successfully"})
	}
}
