package delivery

import (
	"bytes"
	"io"
	"log"
	"net/http"

	"acsync-backend/pkg/signature"

	"github.com/gin-gonic/gin"
)

// SignatureMiddleware verifies the X-AC-Signature header against an
// HMAC-SHA256 of the raw body. With no secret configured verification is
// skipped entirely, which is only acceptable for local development.
func SignatureMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			log.Printf("[Webhook] No webhook secret configured - skipping signature verification")
			c.Next()
			return
		}

		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "unable to read request body"})
			c.Abort()
			return
		}
		// Hand the body back to the payload parser
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !signature.Verify(secret, body, c.GetHeader("X-AC-Signature")) {
			log.Printf("[Webhook] Invalid webhook signature")
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid signature"})
			c.Abort()
			return
		}

		c.Next()
	}
}
