package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CouponRequest is the admin payload for creating a coupon
type CouponRequest struct {
	Code        string `json:"code" binding:"required"`                     // Redemption code
	Percentage  int    `json:"percentage" binding:"required,gt=0,lte=100"`  // Discount percentage
	Description string `json:"description"`                                 // Marketing copy
}

// CouponAvailabilityRequest toggles a coupon on or off
type CouponAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"` // Pointer so an explicit false binds
}

// ListCouponsHandler returns every coupon
func ListCouponsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []domain.Coupon // Slice to hold coupons
		if err := db.Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons) // Return the coupons
	}
}

// CreateCouponHandler stores a new coupon, available by default
func CreateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CouponRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		coupon := domain.Coupon{
			Code:        req.Code,        // Redemption code
			Percentage:  req.Percentage,  // Discount percentage
			Description: req.Description, // Marketing copy
		}
		if err := db.Create(&coupon).Error; err != nil {
			// Duplicate redemption code
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Coupon code already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon) // Return the stored coupon
	}
}

// UpdateCouponHandler flips a coupon's availability. Modifying zero rows
// reports 400, mirroring the store's "nothing applied" outcome.
func UpdateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")               // Coupon id from the path
		var req CouponAvailabilityRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		res := db.Model(&domain.Coupon{}).
			Where("id = ?", id).
			Update("available", *req.Available)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update coupon"})
			return
		}
		// No document was modified
		if res.RowsAffected == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Coupon not updated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon updated successfully"})
	}
}

// ValidateCouponHandler resolves a coupon code into its discount terms.
// Unknown codes are 404; a retired coupon is 400 without the discount.
func ValidateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")  // Redemption code from the path
		var coupon domain.Coupon // Fetch coupon from database
		if err := db.Where("code = ?", code).First(&coupon).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Coupon not found"})
			return
		}
		// Retired coupons never yield their discount terms
		if coupon.Available == nil || !*coupon.Available {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Coupon is not available"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"percentage":  coupon.Percentage,  // Discount percentage
			"description": coupon.Description, // Marketing copy
		})
	}
}
