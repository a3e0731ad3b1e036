// Package seeds keeps the spoiler logs of seeds generated by the hosted
// server so a seed can be looked up again after the result cache expires.
package seeds

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=seedsmock github.com/junglerando/rando-api/internal/repositories/seeds Repository

// Record is one generated seed
type Record struct {
	// Key is the generation time followed by the seed hash, e.g. "1718000000[1, 2, 3, 4, 5]"
	Key        string    `json:"key"`
	SeedID     string    `json:"seed_id"`
	Hash       string    `json:"hash"`
	SpoilerLog []byte    `json:"spoiler_log"`
	CreatedAt  time.Time `json:"created_at"`
}

// PutInput contains parameters for storing a seed
type PutInput struct {
	SeedID     string
	Hash       string
	SpoilerLog []byte
}

// PutOutput contains the stored record
type PutOutput struct {
	Record *Record
}

// GetBySeedIDInput contains parameters for a lookup
type GetBySeedIDInput struct {
	SeedID string
}

// GetBySeedIDOutput contains the record
type GetBySeedIDOutput struct {
	Record *Record
}

// ListRecentInput contains parameters for listing seeds
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput contains records, newest first
type ListRecentOutput struct {
	Records []*Record
}

// Repository defines the interface for seed storage
type Repository interface {
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	GetBySeedID(ctx context.Context, input GetBySeedIDInput) (*GetBySeedIDOutput, error)
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}
