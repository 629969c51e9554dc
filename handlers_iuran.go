package main

import (
	"net/http"
	"strconv"
	"time"

	"klubkas/pkg/iuran"

	"github.com/gin-gonic/gin"
)

func (a *App) getDuesHandler(c *gin.Context) {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tahun tidak valid"})
			return
		}
		year = y
	}
	rows, err := a.iuran.GetStatus(currentUser(c), year)
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil data iuran")
		return
	}
	// absence means unpaid: complete every row before it crosses the wire
	for i := range rows {
		rows[i].Dues = iuran.FillMonths(rows[i].Dues)
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (a *App) setDuesHandler(c *gin.Context) {
	var req struct {
		MemberID string `json:"memberId" binding:"required"`
		Year     int    `json:"year" binding:"required"`
		Month    int    `json:"month" binding:"required"`
		Status   string `json:"status" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := a.iuran.SetStatus(currentUser(c), req.MemberID, req.Year, req.Month, req.Status); err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengubah status iuran")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
