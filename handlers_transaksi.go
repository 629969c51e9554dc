package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"klubkas/pkg/ledger"

	"github.com/gin-gonic/gin"
)

type transactionRequest struct {
	TanggalTransaksi string `json:"tanggal_transaksi"`
	Jenis            string `json:"jenis"`
	Nilai            any    `json:"nilai"`
	Kategori         string `json:"kategori"`
	Catatan          string `json:"catatan"`
}

func (r transactionRequest) toInput() ledger.Input {
	return ledger.Input{
		TanggalTransaksi: r.TanggalTransaksi,
		Jenis:            r.Jenis,
		Nilai:            nilaiString(r.Nilai),
		Kategori:         r.Kategori,
		Catatan:          r.Catatan,
	}
}

// nilaiString canonicalizes the amount, which clients send either as a JSON
// number or a numeric string. The digit rule applies to this form.
func nilaiString(v any) string {
	switch n := v.(type) {
	case string:
		return strings.TrimSpace(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case json.Number:
		return n.String()
	}
	return ""
}

func (a *App) listTransactionsHandler(c *gin.Context) {
	public := c.Query("public") == "true"
	txs, err := a.ledger.ListActive(currentUser(c), public)
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil transaksi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": txs})
}

func (a *App) getTransactionHandler(c *gin.Context) {
	tx, err := a.ledger.Get(currentUser(c), c.Param("id"))
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengambil transaksi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (a *App) createTransactionHandler(c *gin.Context) {
	var req transactionRequest
	if !bindJSON(c, &req) {
		return
	}
	tx, err := a.ledger.Create(currentUser(c), req.toInput())
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat membuat transaksi")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

func (a *App) updateTransactionHandler(c *gin.Context) {
	var req transactionRequest
	if !bindJSON(c, &req) {
		return
	}
	tx, err := a.ledger.Update(currentUser(c), c.Param("id"), req.toInput())
	if err != nil {
		writeError(c, err, "Terjadi kesalahan saat mengupdate transaksi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (a *App) deleteTransactionHandler(c *gin.Context) {
	if err := a.ledger.SoftDelete(currentUser(c), c.Param("id")); err != nil {
		writeError(c, err, "Terjadi kesalahan saat menghapus transaksi")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
