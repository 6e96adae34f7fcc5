// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// RunAllSeeds dipanggil sekali saat boot, setelah AutoMigrate.
// Semua seed idempoten: sudah ada -> lewati.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeds...")

	if err := SeedSuperAdmin(db); err != nil {
		log.Println("[ERROR] seed super admin gagal:", err)
	}
	if err := SeedDefaultTemplate(db); err != nil {
		log.Println("[ERROR] seed template default gagal:", err)
	}

	log.Println("🌱 Seeds selesai")
}
