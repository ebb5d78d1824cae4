// Package memory provides in-memory user and session stores, the default
// backend when no database is configured.
//
// Each store serializes all mutations behind one RWMutex, which satisfies
// the per-key atomicity the store contracts require: a create and an update
// of the same user cannot interleave, and a session create either claims its
// token or reports session.ErrTokenExists. Contents are copied on the way in
// and out so callers never share memory with the store.
package memory
