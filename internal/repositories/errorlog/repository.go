// Package errorlog records failed generations on the hosted server together
// with the encoded settings that produced them.
package errorlog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=errorlogmock github.com/junglerando/rando-api/internal/repositories/errorlog Repository

// Entry is one failed generation
type Entry struct {
	ID        int64
	CreatedAt time.Time
	GenKey    string
	// ErrorData is the displayed error, "<ErrorType>: <message>"
	ErrorData string
	// Settings is the encoded settings string of the failed request
	Settings string
}

// RecordInput contains parameters for recording a failure
type RecordInput struct {
	GenKey    string
	ErrorData string
	Settings  string
}

// RecordOutput contains the stored entry
type RecordOutput struct {
	Entry *Entry
}

// ListInput contains parameters for listing failures
type ListInput struct {
	Limit int
}

// ListOutput contains entries, newest first
type ListOutput struct {
	Entries []*Entry
}

// Repository defines the interface for the error table
type Repository interface {
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
	Close() error
}
