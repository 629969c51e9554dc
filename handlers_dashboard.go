package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the public dashboard: current-month KPIs plus the
// trailing 12-month trend.
func (a *App) dashboardHandler(c *gin.Context) {
	d, err := a.ledger.Dashboard()
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil data dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}
