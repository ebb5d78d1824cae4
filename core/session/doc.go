// Package session manages login sessions keyed by an opaque 16-character
// token carried in the session_id cookie.
//
// A Session binds a token to a user id with a creation time and TTL. There is
// no logout: a session ends only by expiry. The Manager owns the token
// generator and the create path, retrying on collision (a colliding token is
// never overwritten); lookups reject expired sessions with ErrExpired.
//
//	mgr := session.NewManager(store, 24*time.Hour)
//	sess, err := mgr.Start(ctx, user.ID)
//
// Persistence is behind the Store interface; implementations live under
// storage/. Stores must keep create atomic per token so a duplicate token
// surfaces as ErrTokenExists.
package session
