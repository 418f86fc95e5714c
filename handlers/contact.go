package handlers

import (
	"log"
	"net/http"

	"folio/models"

	"github.com/gin-gonic/gin"
)

// ContactMailer dispatches one notification email per submission.
// *mail.Mailer satisfies it; tests substitute a double.
type ContactMailer interface {
	SendContactNotification(req models.ContactRequest) error
}

func SendEmail(mailer ContactMailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		if err := mailer.SendContactNotification(req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to send email",
				"error":   err.Error(),
			})
			return
		}

		log.Printf("Email sent for submission from %s", req.Email)
		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}
