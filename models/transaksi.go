package models

import "time"

// Transaction jenis values.
const (
	JenisPenerimaan  = "penerimaan"
	JenisPengeluaran = "pengeluaran"
)

// Transaction kategori values.
const (
	KategoriIuranAnggota = "iuran anggota"
	KategoriOperasional  = "operasional"
	KategoriAsset        = "asset"
	KategoriLainnya      = "lainnya"
)

// Transaction is one ledger entry. Rows are never hard-deleted; IsDeleted
// hides them from every read and aggregate.
type Transaction struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
	TanggalTransaksi time.Time `gorm:"not null;index" json:"tanggalTransaksi"`
	Jenis            string    `gorm:"size:16;not null" json:"jenis"`
	Nilai            int64     `gorm:"not null" json:"nilai"`
	Kategori         string    `gorm:"size:32;not null" json:"kategori"`
	Catatan          string    `gorm:"size:512" json:"catatan"`
	CreatedBy        string    `gorm:"size:36" json:"createdBy"`
	UpdatedBy        string    `gorm:"size:36" json:"updatedBy"`
	IsDeleted        bool      `gorm:"default:false;index" json:"isDeleted"`
}
