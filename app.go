package main

import (
	"log"

	"klubkas/pkg/anggota"
	"klubkas/pkg/auth"
	"klubkas/pkg/iuran"
	"klubkas/pkg/jadwal"
	"klubkas/pkg/ledger"
)

// Store is the full record-store surface the application needs.
// storage.Gorm and storage.Memory both satisfy it.
type Store interface {
	auth.UserStore
	ledger.Store
	iuran.Store
	jadwal.Store
	anggota.Store
}

// App wires the domain services to one store handle and one token secret.
type App struct {
	resolver *auth.Resolver
	auth     *auth.Service
	ledger   *ledger.Service
	iuran    *iuran.Service
	jadwal   *jadwal.Service
	anggota  *anggota.Service
}

func newApp(store Store, jwtSecret []byte) *App {
	codec := auth.NewTokenCodec(jwtSecret)
	// Mutations mark dependent views stale; clients re-fetch on this signal.
	invalidate := func(view string) { log.Printf("view stale: %s", view) }
	return &App{
		resolver: auth.NewResolver(
			auth.CookieStrategy(codec, auth.CookieName),
			auth.BearerStrategy(codec),
		),
		auth:    auth.NewService(store, codec),
		ledger:  ledger.NewService(store, ledger.WithInvalidate(invalidate)),
		iuran:   iuran.NewService(store, iuran.WithInvalidate(invalidate)),
		jadwal:  jadwal.NewService(store, jadwal.WithInvalidate(invalidate)),
		anggota: anggota.NewService(store, anggota.WithInvalidate(invalidate)),
	}
}
