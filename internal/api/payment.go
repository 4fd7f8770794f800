package api

import (
	"context"  // Context for the processor call
	"math"     // Rounding to minor units
	"net/http" // HTTP status codes

	"livingnest/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// IntentCreator is the slice of the external payment processor this service
// uses: turn a minor-unit amount into an opaque client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// PaymentIntentRequest carries the rent amount to charge
type PaymentIntentRequest struct {
	Rent float64 `json:"rent" binding:"required,gt=0"` // Amount in major currency units
}

// PaymentRequest is the completed-transaction record sent by the client
type PaymentRequest struct {
	Email         string  `json:"email" binding:"required,email"`   // Paying member's email
	ApartmentNo   string  `json:"apartmentNo" binding:"required"`   // Apartment being paid for
	Rent          float64 `json:"rent" binding:"required,gt=0"`     // Rent before discount
	Amount        float64 `json:"amount" binding:"required,gt=0"`   // Charged amount after any coupon
	Month         string  `json:"month"`                            // Rent month
	TransactionID string  `json:"transactionId"`                    // Processor transaction reference
}

// CreatePaymentIntentHandler asks the external processor for a payment
// intent. The rent arrives in major units and is converted to the
// processor's minor-unit integer representation before the call.
func CreatePaymentIntentHandler(intents IntentCreator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentIntentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		amountCents := int64(math.Round(req.Rent * 100)) // Convert to minor units
		clientSecret, err := intents.CreateIntent(c.Request.Context(), amountCents)
		if err != nil {
			// Processor failures are surfaced as-is
			logrus.WithFields(logrus.Fields{
				"amount_cents": amountCents, // Requested charge
				"error":        err.Error(), // Error message
			}).Error("Payment intent creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret}) // Opaque handle for the client
	}
}

// RecordPaymentHandler persists a completed rental payment. Records are
// immutable after this insert.
func RecordPaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PaymentRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		payment := domain.Payment{
			Email:         req.Email,         // Paying member's email
			ApartmentNo:   req.ApartmentNo,   // Apartment being paid for
			Rent:          req.Rent,          // Rent before discount
			Amount:        req.Amount,        // Charged amount
			Month:         req.Month,         // Rent month
			TransactionID: req.TransactionID, // Processor reference
		}
		if err := db.Create(&payment).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email":        req.Email,       // Paying member
				"apartment_no": req.ApartmentNo, // Apartment being paid for
				"error":        err.Error(),     // Error message
			}).Error("Payment insert failed") // Log insert failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save payment"})
			return
		}
		// Log the recorded payment
		logrus.WithFields(logrus.Fields{
			"email":        req.Email,       // Paying member
			"apartment_no": req.ApartmentNo, // Apartment being paid for
			"amount":       req.Amount,      // Charged amount
		}).Info("Payment recorded")
		c.JSON(http.StatusCreated, payment) // Return the stored record
	}
}

// GetPaymentsHandler returns a member's payment history by email
func GetPaymentsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")      // Email from the path
		var payments []domain.Payment  // Slice to hold payments
		if err := db.Where("email = ?", email).Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch payments"})
			return
		}
		c.JSON(http.StatusOK, payments) // Return the payments
	}
}
