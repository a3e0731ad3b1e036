package generation

import "github.com/junglerando/rando-api/internal/executor"

// Poll status codes. They double as HTTP status codes.
const (
	StatusReady      = 200
	StatusStarted    = 201
	StatusQueued     = 202
	StatusRunning    = 203
	StatusMissingKey = 205
	StatusFailed     = 208
)

// Content types of PollOutput.Body
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// PollInput defines the request for polling a generation
type PollInput struct {
	GenKey string
	// Body is the settings JSON; only read when the key starts a new job
	Body []byte
}

// PollOutput defines the response for polling a generation
type PollOutput struct {
	Code        int
	ContentType string
	Body        []byte
}

// Terminal reports whether polling again can change the answer
func (o *PollOutput) Terminal() bool {
	switch o.Code {
	case StatusReady, StatusFailed, StatusMissingKey:
		return true
	}
	return false
}

// StatusInput defines the request for a read-only status check
type StatusInput struct {
	GenKey string
}

// StatsOutput reports queue depth for health checks
type StatsOutput struct {
	executor.Stats
	CurrentJobs []string `json:"current_jobs"`
}
