package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"klubkas/pkg/apperr"
	"klubkas/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const ctxUserKey = "authUser"

// identityMiddleware resolves the request credential (cookie first, bearer
// second) and stashes the identity; anonymous requests pass through so
// public endpoints still work.
func (a *App) identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, ok := a.resolver.Resolve(c.Request); ok {
			c.Set(ctxUserKey, u)
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) auth.AuthUser {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(auth.AuthUser); ok {
			return u
		}
	}
	return auth.AuthUser{}
}

func requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c).ID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// writeError maps the error taxonomy to HTTP statuses. Internal causes are
// logged here and never sent to the client.
func writeError(c *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Unauthorized:
		status = http.StatusUnauthorized
	case apperr.Forbidden:
		status = http.StatusForbidden
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.NotFound:
		status = http.StatusNotFound
	default:
		log.Printf("internal error: %v", err)
	}
	c.JSON(status, gin.H{"error": apperr.Message(err, fallback)})
}

// bindJSON decodes the request body; binding failures become
// field-identified validation messages.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Field %s wajib diisi", strings.ToLower(verrs[0].Field()))})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format permintaan tidak valid"})
		return false
	}
	return true
}
