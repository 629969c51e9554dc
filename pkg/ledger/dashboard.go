package ledger

import (
	"fmt"
	"time"

	"klubkas/models"
	"klubkas/pkg/apperr"
)

type KPI struct {
	PenerimaanBulanIni  int64 `json:"penerimaanBulanIni"`
	PengeluaranBulanIni int64 `json:"pengeluaranBulanIni"`
	SaldoBulanIni       int64 `json:"saldoBulanIni"`
	NetCashflow         int64 `json:"netCashflow"`
}

type TrendPoint struct {
	Bulan       string `json:"bulan"`
	Penerimaan  int64  `json:"penerimaan"`
	Pengeluaran int64  `json:"pengeluaran"`
	Net         int64  `json:"net"`
}

type Dashboard struct {
	KPI   KPI          `json:"kpi"`
	Trend []TrendPoint `json:"trend"`
}

// Indonesian short month names, matching the id-ID locale labels the club's
// dashboard has always shown.
var bulanShort = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Dashboard derives current-month KPIs and the trailing 12-month trend from
// active transactions in a single pass. The prior balance is the signed
// running sum over all history strictly before the current month, not just
// the previous month's delta, so a gap month does not break the total.
func (s *Service) Dashboard() (*Dashboard, error) {
	txs, err := s.store.ListActiveTransactions()
	if err != nil {
		return nil, apperr.Classify(err, "Terjadi kesalahan saat mengambil data dashboard")
	}

	now := s.now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type bucket struct {
		penerimaan  int64
		pengeluaran int64
	}
	// index 11 is the current month, index 0 eleven months back
	var months [12]bucket
	var saldoAkhirBulanLalu int64

	for _, t := range txs {
		tt := t.TanggalTransaksi
		// One civil-month partition decides both sums, so a row on the month
		// boundary is either prior balance or current month, never both.
		back := (now.Year()-tt.Year())*12 + int(now.Month()) - int(tt.Month())
		if back >= 1 {
			switch t.Jenis {
			case models.JenisPenerimaan:
				saldoAkhirBulanLalu += t.Nilai
			case models.JenisPengeluaran:
				saldoAkhirBulanLalu -= t.Nilai
			}
		}
		if back < 0 || back > 11 {
			continue
		}
		idx := 11 - back
		switch t.Jenis {
		case models.JenisPenerimaan:
			months[idx].penerimaan += t.Nilai
		case models.JenisPengeluaran:
			months[idx].pengeluaran += t.Nilai
		}
	}

	cur := months[11]
	net := cur.penerimaan - cur.pengeluaran
	d := &Dashboard{
		KPI: KPI{
			PenerimaanBulanIni:  cur.penerimaan,
			PengeluaranBulanIni: cur.pengeluaran,
			NetCashflow:         net,
			SaldoBulanIni:       saldoAkhirBulanLalu + net,
		},
		Trend: make([]TrendPoint, 0, 12),
	}
	for i := 0; i < 12; i++ {
		m := startOfMonth.AddDate(0, i-11, 0)
		d.Trend = append(d.Trend, TrendPoint{
			Bulan:       fmt.Sprintf("%s %02d", bulanShort[int(m.Month())-1], m.Year()%100),
			Penerimaan:  months[i].penerimaan,
			Pengeluaran: months[i].pengeluaran,
			Net:         months[i].penerimaan - months[i].pengeluaran,
		})
	}
	return d, nil
}
