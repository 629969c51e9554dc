package main

import (
	"net/http"

	"klubkas/pkg/auth"

	"github.com/gin-gonic/gin"
)

func (a *App) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	user, token, err := a.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat login")
		return
	}
	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}

func (a *App) logoutHandler(c *gin.Context) {
	clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (a *App) meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", false, true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
}
