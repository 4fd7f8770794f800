package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Time durations

	"livingnest/internal/cache"  // Redis cache helpers
	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// ListMembersHandler returns every user currently holding the member role
func ListMembersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var members []domain.User // Slice to hold members
		if err := db.Where("role = ?", "member").Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch members"})
			return
		}
		c.JSON(http.StatusOK, members) // Return the members
	}
}

// UpdateUserRoleHandler forces a user's role back to plain "user", the
// admin's lever for evicting a member
func UpdateUserRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId") // User id from the path
		res := db.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("role", "user")
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		// Unknown user id
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		// Log the demotion
		logrus.WithFields(logrus.Fields{
			"user_id": userID, // Demoted user
			"role":    "user", // New role
		}).Info("User role updated")
		c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
	}
}

// adminInfo is the cached shape of the dashboard aggregate
type adminInfo struct {
	TotalUsers           int64   `json:"totalUsers"`           // All registered users
	TotalMembers         int64   `json:"totalMembers"`         // Users with role member
	TotalApartments      int64   `json:"totalApartments"`      // All apartments
	AvailablePercent     float64 `json:"availablePercent"`     // Share still available
	UnavailablePercent   float64 `json:"unavailablePercent"`   // Share already rented
	PendingAgreements    int64   `json:"pendingAgreements"`    // Applications awaiting review
	TotalAnnouncements   int64   `json:"totalAnnouncements"`   // Posted announcements
}

// AdminInfoHandler aggregates dashboard counts and percentages, cached in
// Redis so a busy dashboard doesn't hammer the store.
func AdminInfoHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		cacheKey := "admin:info"    // One aggregate, one key
		var cached adminInfo
		// If cached data found, return it
		found, err := cache.Get(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"info": cached, "cached": true})
			return
		}

		var info adminInfo
		var available int64 // Apartments still available
		// Gather the dashboard counts
		counts := []struct {
			query *gorm.DB
			dest  *int64
		}{
			{db.Model(&domain.User{}), &info.TotalUsers},
			{db.Model(&domain.User{}).Where("role = ?", "member"), &info.TotalMembers},
			{db.Model(&domain.Apartment{}), &info.TotalApartments},
			{db.Model(&domain.Apartment{}).Where("availability = ?", "available"), &available},
			{db.Model(&domain.Agreement{}).Where("status = ?", domain.AgreementPending), &info.PendingAgreements},
			{db.Model(&domain.Announcement{}), &info.TotalAnnouncements},
		}
		for _, cnt := range counts {
			if err := cnt.query.Count(cnt.dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to gather statistics"})
				return
			}
		}
		// Percentages only make sense with at least one apartment
		if info.TotalApartments > 0 {
			info.AvailablePercent = float64(available) / float64(info.TotalApartments) * 100
			info.UnavailablePercent = 100 - info.AvailablePercent
		}
		// Cache the aggregate for future requests
		_ = cache.Set(ctx, rdb, cacheKey, info, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"info": info, "cached": false})
	}
}
