// Package store defines the persistence contracts for users and cards and
// the sentinel errors every store implementation reports. Business code
// depends on these interfaces only; concrete backends live under
// internal/platform.
package store
