package main

import (
	"net/http"

	"klubkas/pkg/jadwal"

	"github.com/gin-gonic/gin"
)

func (a *App) getScheduleHandler(c *gin.Context) {
	week, err := a.jadwal.GetWeek(currentUser(c))
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil jadwal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": week})
}

func (a *App) setScheduleHandler(c *gin.Context) {
	var req struct {
		DayOfWeek int    `json:"dayOfWeek" binding:"required"`
		TimeSlot  string `json:"timeSlot" binding:"required"`
		Status    string `json:"status" binding:"required"`
		UserName  string `json:"userName"`
		Contact   string `json:"contact"`
	}
	if !bindJSON(c, &req) {
		return
	}
	in := jadwal.SlotInput{Status: req.Status, UserName: req.UserName, Contact: req.Contact}
	if err := a.jadwal.SetSlot(currentUser(c), req.DayOfWeek, req.TimeSlot, in); err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengubah jadwal")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
