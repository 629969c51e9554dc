package main

import (
	"fmt"
	"log"
	"os"

	"klubkas/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Auto-load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}

	// Support a lightweight migrate command: `./klubkas migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		db := mustOpenDB()
		migrateDB(db)
		seedDB(db)
		fmt.Println("migration and seeding completed")
		return
	}

	db := mustOpenDB()
	if autoMigrateEnabled() {
		migrateDB(db)
	}
	if envEnabled("DB_SEED") {
		seedDB(db)
	}

	app := newApp(storage.NewGorm(db), []byte(secret))

	r := gin.Default()
	setupRoutes(r, app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
