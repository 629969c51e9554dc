package ledger

import (
	"testing"
	"time"

	"klubkas/pkg/apperr"
)

var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func validInput() Input {
	return Input{
		TanggalTransaksi: "2026-03-10",
		Jenis:            "penerimaan",
		Nilai:            "100000",
		Kategori:         "iuran anggota",
		Catatan:          "Iuran bulanan",
	}
}

func TestValidateAccepts(t *testing.T) {
	tanggal, nilai, err := validate(validInput(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if nilai != 100000 {
		t.Fatalf("nilai = %d", nilai)
	}
	if tanggal.Day() != 10 || tanggal.Month() != time.March {
		t.Fatalf("tanggal = %v", tanggal)
	}
}

func TestValidateNilaiDigits(t *testing.T) {
	cases := []struct {
		nilai string
		ok    bool
	}{
		{"100000", true},
		{"999999999", true}, // 9 digits, the maximum
		{"1000000000", false},
		{"0", true},
		{"-5000", false},
		{"100000.50", false},
		{"12a", false},
		{"", false},
	}
	for _, tc := range cases {
		in := validInput()
		in.Nilai = tc.nilai
		_, _, err := validate(in, testNow)
		if tc.ok && err != nil {
			t.Errorf("nilai %q: unexpected error %v", tc.nilai, err)
		}
		if !tc.ok && apperr.KindOf(err) != apperr.Validation {
			t.Errorf("nilai %q: expected Validation error, got %v", tc.nilai, err)
		}
	}
}

func TestValidateOrderFirstFailureWins(t *testing.T) {
	in := validInput()
	in.Jenis = ""
	in.Nilai = "1000000000" // also invalid, but the missing field is reported first
	_, _, err := validate(in, testNow)
	if err == nil || err.Error() != "Semua field wajib diisi kecuali catatan" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateJenisKategori(t *testing.T) {
	in := validInput()
	in.Jenis = "transfer"
	if _, _, err := validate(in, testNow); apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("bad jenis: %v", err)
	}

	in = validInput()
	in.Kategori = "hadiah"
	if _, _, err := validate(in, testNow); apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("bad kategori: %v", err)
	}
}

func TestValidateIuranAnggotaMustBePenerimaan(t *testing.T) {
	in := validInput()
	in.Jenis = "pengeluaran"
	in.Kategori = "iuran anggota"
	_, _, err := validate(in, testNow)
	if apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("expected Validation, got %v", err)
	}
}

func TestValidateDateWindow(t *testing.T) {
	today := testNow.Format("2006-01-02")
	cases := []struct {
		name    string
		tanggal string
		ok      bool
	}{
		{"today", today, true},
		{"tomorrow", testNow.AddDate(0, 0, 1).Format("2006-01-02"), false},
		{"exactly 90 days back", testNow.AddDate(0, 0, -90).Format("2006-01-02"), true},
		{"91 days back", testNow.AddDate(0, 0, -91).Format("2006-01-02"), false},
		{"rfc3339 today", testNow.Format(time.RFC3339), true},
		{"garbage", "bukan-tanggal", false},
	}
	for _, tc := range cases {
		in := validInput()
		in.TanggalTransaksi = tc.tanggal
		_, _, err := validate(in, testNow)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && apperr.KindOf(err) != apperr.Validation {
			t.Errorf("%s: expected Validation error, got %v", tc.name, err)
		}
	}
}
