package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"time"     // Timestamps

	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AgreementRequest is the rental application payload
type AgreementRequest struct {
	UserEmail   string  `json:"userEmail" binding:"required,email"` // Applicant email
	ApartmentNo string  `json:"apartmentNo" binding:"required"`     // Applied-for apartment
	Block       string  `json:"block"`                              // Block name
	Floor       int     `json:"floor"`                              // Floor number
	Rent        float64 `json:"rent" binding:"required,gt=0"`       // Rent at application time
}

// ApplyAgreementHandler files a rental application as a pending agreement.
// Uniqueness per (userEmail, apartmentNo) is enforced by the store's index,
// so two racing applications cannot both land; the loser sees a duplicate
// key and gets a Conflict.
func ApplyAgreementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AgreementRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Stamp and insert the pending agreement
		agreement := domain.Agreement{
			UserEmail:   req.UserEmail,           // Applicant email
			ApartmentNo: req.ApartmentNo,         // Applied-for apartment
			Block:       req.Block,               // Block name
			Floor:       req.Floor,               // Floor number
			Rent:        req.Rent,                // Rent at application time
			Status:      domain.AgreementPending, // Initial lifecycle state
			Date:        time.Now(),              // Application timestamp
		}
		if err := db.Create(&agreement).Error; err != nil {
			// Unique index rejected a second application for the same apartment
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "You have already applied for an apartment"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_email":   req.UserEmail,   // Applicant email
				"apartment_no": req.ApartmentNo, // Applied-for apartment
				"error":        err.Error(),     // Error message
			}).Error("Agreement insert failed") // Log insert failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save agreement"})
			return
		}
		// Return the stored agreement
		c.JSON(http.StatusCreated, agreement)
	}
}

// GetAgreementHandler returns the caller's agreement by email, 404 if none
func GetAgreementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")     // Email from the path
		var agreement domain.Agreement // Fetch agreement from database
		if err := db.Where("user_email = ?", email).First(&agreement).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Agreement not found"})
			return
		}
		c.JSON(http.StatusOK, agreement) // Return the agreement
	}
}

// ListAgreementRequestsHandler returns every pending agreement for admins
func ListAgreementRequestsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var agreements []domain.Agreement // Slice to hold pending agreements
		if err := db.Where("status = ?", domain.AgreementPending).Find(&agreements).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch agreement requests"})
			return
		}
		c.JSON(http.StatusOK, agreements) // Return pending agreements
	}
}

// AcceptAgreementHandler approves a pending agreement: the agreement becomes
// checked/approved and the applicant is promoted to member. Both writes run
// inside one transaction so a failure midway leaves nothing half-applied.
func AcceptAgreementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Agreement id from the path
		var agreement domain.Agreement
		// Atomic status flip plus role promotion
		err := db.Transaction(func(tx *gorm.DB) error {
			// Resolve the agreement first to learn the applicant
			if err := tx.Where("id = ?", id).First(&agreement).Error; err != nil {
				return err // Return error to rollback
			}
			// Mark the agreement decided
			if err := tx.Model(&agreement).Updates(map[string]any{
				"status":   domain.AgreementChecked, // Terminal lifecycle state
				"decision": domain.DecisionApproved, // Which way the admin ruled
			}).Error; err != nil {
				return err // Return error to rollback
			}
			// Promote the applicant
			if err := tx.Model(&domain.User{}).
				Where("email = ?", agreement.UserEmail).
				Update("role", "member").Error; err != nil {
				return err // Return error to rollback
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Agreement not found"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"agreement_id": id,          // Agreement being approved
				"error":        err.Error(), // Error message
			}).Error("Agreement approval failed") // Log approval failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to approve agreement"})
			return
		}
		// Log successful approval
		logrus.WithFields(logrus.Fields{
			"agreement_id": id,                  // Approved agreement
			"user_email":   agreement.UserEmail, // Promoted applicant
			"decision":     domain.DecisionApproved,
		}).Info("Agreement approved") // Log approval
		c.JSON(http.StatusOK, gin.H{"message": "Agreement approved, user promoted to member"})
	}
}

// RejectAgreementHandler rejects a pending agreement. The agreement still
// becomes checked; only the decision field distinguishes the outcome, and
// the applicant's role is left untouched.
func RejectAgreementHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Agreement id from the path
		res := db.Model(&domain.Agreement{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"status":   domain.AgreementChecked, // Terminal lifecycle state
				"decision": domain.DecisionRejected, // Which way the admin ruled
			})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reject agreement"})
			return
		}
		// Unknown agreement id
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Agreement not found"})
			return
		}
		// Log the rejection
		logrus.WithFields(logrus.Fields{
			"agreement_id": id, // Rejected agreement
			"decision":     domain.DecisionRejected,
		}).Info("Agreement rejected")
		c.JSON(http.StatusOK, gin.H{"message": "Agreement rejected"})
	}
}
