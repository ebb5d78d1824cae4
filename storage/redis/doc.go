// Package redis provides a redis-backed session store.
//
// Sessions are stored as JSON under "session:<token>" with a redis TTL
// matching the session TTL, so redis expiry removes most stale entries on
// its own; the manager still checks expiry against the stored timestamps,
// which keeps behavior correct across clock skew. Create uses SETNX, so a
// token collision surfaces as session.ErrTokenExists instead of silently
// overwriting the existing session.
package redis
