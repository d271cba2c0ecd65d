package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes the payload verbatim with a 200. Success shapes differ per
// endpoint, so handlers build them; only the error envelope is fixed.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Err writes the single error envelope used by every failure response.
func Err(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": message})
}
