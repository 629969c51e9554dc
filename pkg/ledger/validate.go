package ledger

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"klubkas/models"
	"klubkas/pkg/apperr"
)

var nilaiRE = regexp.MustCompile(`^\d{1,9}$`)

// Backdating window for tanggal_transaksi, re-evaluated against "now" on
// every write.
const backdateDays = 90

// Input is one create/update request for the ledger. Nilai is the amount in
// canonical string form so the digit rule applies exactly.
type Input struct {
	TanggalTransaksi string
	Jenis            string
	Nilai            string
	Kategori         string
	Catatan          string
}

var validKategori = map[string]bool{
	models.KategoriIuranAnggota: true,
	models.KategoriOperasional:  true,
	models.KategoriAsset:        true,
	models.KategoriLainnya:      true,
}

// validate applies the field rules in order, first failure wins, and returns
// the parsed date and amount. No partial result escapes a failure.
func validate(in Input, now time.Time) (time.Time, int64, error) {
	if strings.TrimSpace(in.TanggalTransaksi) == "" || in.Jenis == "" || in.Nilai == "" || in.Kategori == "" {
		return time.Time{}, 0, apperr.New(apperr.Validation, "Semua field wajib diisi kecuali catatan")
	}
	if !nilaiRE.MatchString(in.Nilai) {
		return time.Time{}, 0, apperr.NewField("nilai", "Nilai harus berupa angka maksimal 9 digit tanpa desimal")
	}
	if in.Jenis != models.JenisPenerimaan && in.Jenis != models.JenisPengeluaran {
		return time.Time{}, 0, apperr.NewField("jenis", "Jenis tidak valid")
	}
	if !validKategori[in.Kategori] {
		return time.Time{}, 0, apperr.NewField("kategori", "Kategori tidak valid")
	}
	if in.Kategori == models.KategoriIuranAnggota && in.Jenis != models.JenisPenerimaan {
		return time.Time{}, 0, apperr.NewField("kategori", `Kategori "iuran anggota" harus berjenis "penerimaan"`)
	}
	tanggal, ok := parseTanggal(in.TanggalTransaksi)
	if !ok {
		return time.Time{}, 0, apperr.NewField("tanggal_transaksi", "Tanggal transaksi tidak valid")
	}
	today := dateOnly(now)
	if d := dateOnly(tanggal); d.After(today) || d.Before(today.AddDate(0, 0, -backdateDays)) {
		return time.Time{}, 0, apperr.NewField("tanggal_transaksi", "Tanggal transaksi harus dalam rentang 90 hari terakhir hingga hari ini")
	}
	nilai, err := strconv.ParseInt(in.Nilai, 10, 64)
	if err != nil {
		return time.Time{}, 0, apperr.NewField("nilai", "Nilai harus berupa angka maksimal 9 digit tanpa desimal")
	}
	return tanggal, nilai, nil
}

func parseTanggal(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOnly compares civil dates: the window bounds are inclusive at day
// granularity regardless of time of day or zone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
