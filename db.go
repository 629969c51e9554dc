package main

import (
	"log"
	"os"
	"strings"
	"time"

	"klubkas/models"
	"klubkas/pkg/auth"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustOpenDB() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	return db
}

// autoMigrateEnabled reads DB_AUTO_MIGRATE (default true).
func autoMigrateEnabled() bool {
	v := strings.ToLower(os.Getenv("DB_AUTO_MIGRATE"))
	return v != "false" && v != "0" && v != "no"
}

func envEnabled(name string) bool {
	v := strings.ToLower(os.Getenv(name))
	return v == "true" || v == "1" || v == "yes"
}

// migrateDB migrates models individually so a failure on one doesn't block
// others. Permission errors are logged and ignored.
func migrateDB(db *gorm.DB) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Printf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.Role{}); err != nil {
		log.Printf("migration warning (roles): %v", err)
	}
	if err := db.AutoMigrate(&models.Member{}); err != nil {
		log.Printf("migration warning (members): %v", err)
	}
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		log.Printf("migration warning (transactions): %v", err)
	}
	if err := db.AutoMigrate(&models.DuesStatus{}); err != nil {
		log.Printf("migration warning (dues_statuses): %v", err)
	}
	if err := db.AutoMigrate(&models.CourtSchedule{}); err != nil {
		log.Printf("migration warning (court_schedules): %v", err)
	}
}

// seedDB creates the demo officer and member logins plus a handful of sample
// transactions. Idempotent: skipped when the officer already exists.
func seedDB(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "budi@tennis.com").Count(&count)
	if count > 0 {
		return
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		log.Printf("seed warning: hash password: %v", err)
		return
	}

	officer := models.User{ID: uuid.NewString(), Email: "budi@tennis.com", Name: "Budi (Pengurus)", Password: hash}
	if err := db.Create(&officer).Error; err != nil {
		log.Printf("seed warning: create officer: %v", err)
		return
	}
	if err := db.Create(&models.Role{ID: uuid.NewString(), UserID: officer.ID, RoleName: "pengurus"}).Error; err != nil {
		log.Printf("seed warning: create officer role: %v", err)
	}
	// Regular member: no role record, which is exactly what anggota means.
	member := models.User{ID: uuid.NewString(), Email: "dina@tennis.com", Name: "Dina (Anggota)", Password: hash}
	if err := db.Create(&member).Error; err != nil {
		log.Printf("seed warning: create member: %v", err)
	}

	now := time.Now()
	demoMembers := []struct {
		name  string
		email string
	}{
		{"Agus Wijaya", "agus@tennis.com"},
		{"Bambang Sutrisno", "bambang@tennis.com"},
		{"Citra Lestari", "citra@tennis.com"},
	}
	for _, dm := range demoMembers {
		email := dm.email
		mb := models.Member{
			ID:                uuid.NewString(),
			Name:              dm.name,
			Email:             &email,
			StatusKeanggotaan: "aktif",
			DefaultIuran:      100000,
			JoinedAt:          now,
		}
		if err := db.Create(&mb).Error; err != nil {
			log.Printf("seed warning: create member %s: %v", dm.name, err)
		}
	}

	thisMonth := func(day int) time.Time {
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
	}
	lastMonth := func(day int) time.Time {
		return thisMonth(day).AddDate(0, -1, 0)
	}
	samples := []models.Transaction{
		{TanggalTransaksi: thisMonth(5), Jenis: models.JenisPenerimaan, Nilai: 500000, Kategori: models.KategoriIuranAnggota, Catatan: "Iuran bulanan anggota"},
		{TanggalTransaksi: thisMonth(10), Jenis: models.JenisPenerimaan, Nilai: 500000, Kategori: models.KategoriIuranAnggota, Catatan: "Iuran bulanan anggota"},
		{TanggalTransaksi: thisMonth(15), Jenis: models.JenisPengeluaran, Nilai: 300000, Kategori: models.KategoriOperasional, Catatan: "Beli bola tennis"},
		{TanggalTransaksi: thisMonth(20), Jenis: models.JenisPengeluaran, Nilai: 50000, Kategori: models.KategoriOperasional, Catatan: "Air minum"},
		{TanggalTransaksi: lastMonth(5), Jenis: models.JenisPenerimaan, Nilai: 1000000, Kategori: models.KategoriIuranAnggota, Catatan: "Iuran bulanan anggota"},
		{TanggalTransaksi: lastMonth(15), Jenis: models.JenisPengeluaran, Nilai: 400000, Kategori: models.KategoriAsset, Catatan: "Net baru"},
	}
	for _, tx := range samples {
		tx.ID = uuid.NewString()
		tx.CreatedBy = officer.ID
		tx.UpdatedBy = officer.ID
		if err := db.Create(&tx).Error; err != nil {
			log.Printf("seed warning: create transaction: %v", err)
		}
	}
	log.Println("Seeded demo users: budi@tennis.com / dina@tennis.com (password: password123)")
}
