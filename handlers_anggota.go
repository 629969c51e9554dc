package main

import (
	"net/http"

	"klubkas/pkg/anggota"

	"github.com/gin-gonic/gin"
)

func (a *App) listMembersHandler(c *gin.Context) {
	members, err := a.anggota.List(currentUser(c))
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil daftar anggota")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

func (a *App) createMemberHandler(c *gin.Context) {
	var req struct {
		Name              string `json:"name"`
		Email             string `json:"email"`
		DefaultIuran      int64  `json:"defaultIuran"`
		StatusKeanggotaan string `json:"statusKeanggotaan"`
	}
	if !bindJSON(c, &req) {
		return
	}
	m, err := a.anggota.Create(currentUser(c), anggota.CreateInput{
		Name:              req.Name,
		Email:             req.Email,
		DefaultIuran:      req.DefaultIuran,
		StatusKeanggotaan: req.StatusKeanggotaan,
	})
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat menambah anggota")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": m})
}

func (a *App) updateMemberHandler(c *gin.Context) {
	var req struct {
		Name              *string `json:"name"`
		Email             *string `json:"email"`
		DefaultIuran      *int64  `json:"defaultIuran"`
		StatusKeanggotaan *string `json:"statusKeanggotaan"`
	}
	if !bindJSON(c, &req) {
		return
	}
	m, err := a.anggota.Update(currentUser(c), c.Param("id"), anggota.UpdateInput{
		Name:              req.Name,
		Email:             req.Email,
		DefaultIuran:      req.DefaultIuran,
		StatusKeanggotaan: req.StatusKeanggotaan,
	})
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengubah anggota")
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": m})
}

func (a *App) createMemberAccountHandler(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	userID, err := a.anggota.CreateAccount(currentUser(c), c.Param("id"), req.Password)
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat membuat akun")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "userId": userID})
}
