package api

import (
	"net/http" // HTTP status codes

	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AnnouncementRequest is the admin payload for posting an announcement
type AnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`       // Headline
	Description string `json:"description" binding:"required"` // Body text
}

// ListAnnouncementsHandler returns every announcement, newest first
func ListAnnouncementsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var announcements []domain.Announcement // Slice to hold announcements
		if err := db.Order("created_at desc").Find(&announcements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch announcements"})
			return
		}
		c.JSON(http.StatusOK, announcements) // Return the announcements
	}
}

// CreateAnnouncementHandler posts a new announcement to all residents
func CreateAnnouncementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnnouncementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		announcement := domain.Announcement{
			Title:       req.Title,       // Headline
			Description: req.Description, // Body text
		}
		if err := db.Create(&announcement).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save announcement"})
			return
		}
		c.JSON(http.StatusCreated, announcement) // Return the stored announcement
	}
}
