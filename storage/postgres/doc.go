// Package postgres provides pgx-backed user and session stores.
//
// Per-key atomicity comes from single-statement writes: user updates merge
// fields inside one UPDATE, and the unique index on session tokens turns a
// create collision into session.ErrTokenExists. Apply Schema once at startup
// before using the stores.
package postgres
