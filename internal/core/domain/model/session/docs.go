// Package session holds the short-lived artifacts of authentication:
// one-time codes, temporary sessions and the claims carried by a session
// token. None of them are persisted in the relational store.
package session
