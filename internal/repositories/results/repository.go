// Package results caches finished generations so a client polling the same
// gen key again gets the same answer.
package results

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=resultsmock github.com/junglerando/rando-api/internal/repositories/results Repository

// Result is the outcome of one generation
type Result struct {
	GenKey string `json:"gen_key"`

	// Artifact is the base64 zip text of a successful generation
	Artifact string `json:"artifact,omitempty"`

	// Error is the display string of a failed generation
	Error string `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Failed reports whether generation ended in an error
func (r *Result) Failed() bool {
	return r.Error != ""
}

// PutInput contains parameters for caching a result
type PutInput struct {
	Result *Result
	TTL    time.Duration // How long the result should be kept
}

// PutOutput contains the cached result
type PutOutput struct {
	Result *Result
}

// GetInput contains parameters for retrieving a result
type GetInput struct {
	GenKey string
}

// GetOutput contains the cached result
type GetOutput struct {
	Result *Result
}

// DeleteInput contains parameters for removing a result
type DeleteInput struct {
	GenKey string
}

// DeleteOutput contains the result of a delete
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for result storage
type Repository interface {
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
