package services

import "errors"

// Sentinel errors for explicit error handling
// These errors allow callers to distinguish between different failure modes
// using errors.Is() instead of string matching

var (
	// ErrInvalidCredentials indicates username/password authentication failed.
	// Deliberately covers both "no such account" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a token whose signature or structure does not verify
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates a well-formed token past its expiry instant.
	// Callers must map this and ErrInvalidToken to the same external outcome.
	ErrExpiredToken = errors.New("token expired")

	// ErrMalformedTechnologyList indicates a technology id payload that is
	// neither a JSON integer array nor a comma-separated integer string
	ErrMalformedTechnologyList = errors.New("malformed technology id list")
)
