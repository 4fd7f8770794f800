package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"livingnest/internal/domain" // Importing domain models
	"livingnest/internal/token"  // Session token issuing

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// TokenRequest is the identity payload exchanged for a session token
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"` // Email must be provided
	Name  string `json:"name"`                           // Optional display name
}

// TokenResponse carries the signed session token
type TokenResponse struct {
	Token string `json:"token"` // JWT token
}

// IssueTokenHandler signs a session token for the given identity payload
func IssueTokenHandler(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		// Sign a token carrying the email claim
		t, err := token.Generate(req.Email, req.Name, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{Token: t})
	}
}

// UpsertUserRequest is the optional profile body sent on first login
type UpsertUserRequest struct {
	Name string `json:"name"` // Display name
}

// UpsertUserHandler saves a user on first login and is a no-op afterwards.
// A repeat call returns the stored record unchanged; in particular the role
// is never overwritten here.
func UpsertUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the path
		var req UpsertUserRequest // Bind JSON request to struct
		_ = c.ShouldBindJSON(&req) // Body is optional on repeat logins

		var existing domain.User // Look for an existing record first
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			// Already known, return the stored record as-is
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		// First login: create with the default role
		user := domain.User{Email: email, Name: req.Name, Role: "user"}
		if err := db.Create(&user).Error; err != nil {
			// A concurrent first login can win the insert; return its record
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
					c.JSON(http.StatusOK, existing)
					return
				}
			}
			logrus.WithFields(logrus.Fields{
				"email": email,       // Identity being saved
				"error": err.Error(), // Error message
			}).Error("User upsert failed") // Log upsert failure
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save user"})
			return
		}
		// Return the newly created record
		c.JSON(http.StatusCreated, user)
	}
}

// GetUserRoleHandler returns the stored role for an email, 404 if unknown
func GetUserRoleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the path
		var user domain.User      // Fetch user from database
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			// Unknown email resolves to a null role
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "role": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": user.Role}) // Return the stored role
	}
}
