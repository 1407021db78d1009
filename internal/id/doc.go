// Package id generates identifiers for log entries.
// This is the canonical source for ID generation across the codebase.
package id
