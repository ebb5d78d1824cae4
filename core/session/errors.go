package session

import "errors"

var (
	// ErrNotFound is returned when no session exists for a token.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned when a session exists but has outlived its TTL.
	ErrExpired = errors.New("session has expired")
	// ErrTokenExists is returned by stores when creating a session whose
	// token is already taken. The manager retries with a fresh token.
	ErrTokenExists = errors.New("session token already exists")
	// ErrTokenGeneration is returned when the randomness source fails.
	ErrTokenGeneration = errors.New("failed to generate token")
	// ErrTokenRetriesExhausted is returned when repeated token collisions
	// prevent session creation.
	ErrTokenRetriesExhausted = errors.New("token collision retries exhausted")
	// ErrInvalidAlphabet is returned when a token alphabet is too short to
	// draw from.
	ErrInvalidAlphabet = errors.New("token alphabet must have at least two characters")
)
