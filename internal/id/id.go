// Package id generates identifiers for report runs.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// runAlphabet keeps run IDs safe for file names and SQLite keys on case-insensitive filesystems.
const runAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// runIDLength gives 36^12 combinations, plenty for locally stored runs.
const runIDLength = 12

// Generate creates a prefixed identifier: prefix-xxxxxxxxxxxx (e.g. "run-4f0c2k9z1m7q").
//
// Returns an error if the system has insufficient entropy for secure random generation.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.Generate(runAlphabet, runIDLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewRunID returns an identifier for one report run.
func NewRunID() (string, error) {
	return Generate("run")
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}
