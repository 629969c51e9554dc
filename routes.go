package main

import "github.com/gin-gonic/gin"

func setupRoutes(r *gin.Engine, app *App) {
	api := r.Group("/api")
	api.Use(app.identityMiddleware())

	api.POST("/auth/login", app.loginHandler)
	api.POST("/auth/logout", app.logoutHandler)
	api.GET("/dashboard", app.dashboardHandler)
	// ?public=true bypasses authentication for the public dashboard table
	api.GET("/transactions", app.listTransactionsHandler)

	authed := api.Group("")
	authed.Use(requireAuth())
	authed.GET("/me", app.meHandler)
	authed.GET("/transactions/:id", app.getTransactionHandler)
	authed.POST("/transactions", app.createTransactionHandler)
	authed.PUT("/transactions/:id", app.updateTransactionHandler)
	authed.DELETE("/transactions/:id", app.deleteTransactionHandler)
	authed.GET("/iuran", app.getDuesHandler)
	authed.POST("/iuran", app.setDuesHandler)
	authed.GET("/jadwal", app.getScheduleHandler)
	authed.POST("/jadwal", app.setScheduleHandler)
	authed.GET("/anggota", app.listMembersHandler)
	authed.POST("/anggota", app.createMemberHandler)
	authed.PUT("/anggota/:id", app.updateMemberHandler)
	authed.POST("/anggota/:id/akun", app.createMemberAccountHandler)
}
