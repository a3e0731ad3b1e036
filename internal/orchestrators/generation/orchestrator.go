// Package generation runs seed generations on the worker pool and answers
// the polling API: start a job, report its place in the queue, and hand back
// the zipped artifact or the error once it finishes.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/junglerando/rando-api/internal/orchestrators/generation Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/junglerando/rando-api/internal/artifact"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/executor"
	"github.com/junglerando/rando-api/internal/generator"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/repositories/errorlog"
	"github.com/junglerando/rando-api/internal/repositories/results"
	"github.com/junglerando/rando-api/internal/repositories/seeds"
	"github.com/junglerando/rando-api/internal/settings"
)

// Pool is the worker pool generations run on
type Pool = executor.Pool[*generator.GenerateOutput]

// Service defines the interface for generation polling
type Service interface {
	// Poll reports on a known key. An unknown key starts a job when the
	// request carries settings and is NotFound otherwise.
	Poll(ctx context.Context, input *PollInput) (*PollOutput, error)
	// Status reports on a known key without ever starting a job.
	Status(ctx context.Context, input *StatusInput) (*PollOutput, error)
	Stats(ctx context.Context) (*StatsOutput, error)
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	Generator   generator.Service
	Pool        *Pool
	ResultsRepo results.Repository
	Clock       clock.Clock

	// Hosted enables the seed and error tables
	Hosted       bool
	SeedsRepo    seeds.Repository
	ErrorLogRepo errorlog.Repository

	ResultTTL time.Duration
	// Random draws seeds for requests that do not carry one. Defaults to a
	// clock-seeded source.
	Random rng.Rand
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.ResultsRepo == nil {
		vb.RequiredField("ResultsRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Hosted {
		if c.SeedsRepo == nil {
			vb.Field("SeedsRepo", "is required on a hosted server")
		}
		if c.ErrorLogRepo == nil {
			vb.Field("ErrorLogRepo", "is required on a hosted server")
		}
	}
	if c.ResultTTL < 0 {
		vb.Field("ResultTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	generator    generator.Service
	pool         *Pool
	resultsRepo  results.Repository
	seedsRepo    seeds.Repository
	errorLogRepo errorlog.Repository
	clock        clock.Clock
	hosted       bool
	resultTTL    time.Duration

	mu     sync.Mutex
	random rng.Rand
	// running jobs by gen key; a job abandoned after its timeout may still
	// hold a stale entry
	currentJob map[string]core.Entity
	requests   map[string]*settings.Settings

	// serializes popping a finished job and caching its result
	finishing sync.Mutex
}

// NewOrchestrator creates a new generation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	random := cfg.Random
	if random == nil {
		random = rng.New(cfg.Clock.Now().UnixNano())
	}

	return &orchestrator{
		generator:    cfg.Generator,
		pool:         cfg.Pool,
		resultsRepo:  cfg.ResultsRepo,
		seedsRepo:    cfg.SeedsRepo,
		errorLogRepo: cfg.ErrorLogRepo,
		clock:        cfg.Clock,
		hosted:       cfg.Hosted,
		resultTTL:    cfg.ResultTTL,
		random:       random,
		currentJob:   make(map[string]core.Entity),
		requests:     make(map[string]*settings.Settings),
	}, nil
}

// Poll implements the polling state machine for a gen key
func (o *orchestrator) Poll(ctx context.Context, input *PollInput) (*PollOutput, error) {
	if input == nil || input.GenKey == "" {
		return missingKey(), nil
	}

	out, err := o.report(ctx, input.GenKey)
	if err == nil || !errors.IsNotFound(err) {
		return out, err
	}
	if len(input.Body) == 0 {
		return nil, errors.NotFoundf("no job for %s; send settings in the body to start one", input.GenKey)
	}

	return o.start(ctx, input.GenKey, input.Body)
}

// Status reports on a key without submitting anything
func (o *orchestrator) Status(ctx context.Context, input *StatusInput) (*PollOutput, error) {
	if input == nil || input.GenKey == "" {
		return missingKey(), nil
	}
	return o.report(ctx, input.GenKey)
}

// Stats reports queue depth and the jobs currently generating
func (o *orchestrator) Stats(_ context.Context) (*StatsOutput, error) {
	o.mu.Lock()
	current := make([]string, 0, len(o.currentJob))
	for key := range o.currentJob {
		current = append(current, key)
	}
	o.mu.Unlock()
	slices.Sort(current)

	return &StatsOutput{
		Stats:       o.pool.Stats(),
		CurrentJobs: current,
	}, nil
}

// report answers for a key that has a cached result or a job. NotFound means
// neither exists.
func (o *orchestrator) report(ctx context.Context, key string) (*PollOutput, error) {
	if out, err := o.cached(ctx, key); err == nil || !errors.IsNotFound(err) {
		return out, err
	}

	state, ok := o.pool.State(key)
	if !ok {
		return nil, errors.NotFoundf("no job for %s", key)
	}

	switch state {
	case executor.StateFinished:
		return o.finish(ctx, key)
	case executor.StateRunning, executor.StatePending:
		if state == executor.StateRunning && o.isCurrent(key) {
			return jsonOutput(StatusRunning, map[string]any{"status": string(executor.StateRunning)})
		}
		return jsonOutput(StatusQueued, map[string]any{
			"status":   string(state),
			"position": o.pool.Position(key),
		})
	default:
		return nil, errors.Internalf("unknown job state %q", state)
	}
}

func (o *orchestrator) cached(ctx context.Context, key string) (*PollOutput, error) {
	got, err := o.resultsRepo.Get(ctx, results.GetInput{GenKey: key})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to read cached result for %s", key)
	}
	return resultOutput(got.Result), nil
}

func (o *orchestrator) start(ctx context.Context, key string, body []byte) (*PollOutput, error) {
	o.mu.Lock()
	s, err := settings.FromPostBody(body, o.random)
	o.mu.Unlock()
	if err != nil {
		slog.Warn("rejected generation request",
			"gen_key", key,
			"error", err,
		)
		return textOutput(StatusFailed, errors.Display(err)), nil
	}

	o.mu.Lock()
	if _, ok := o.requests[key]; !ok {
		o.requests[key] = s
	}
	o.mu.Unlock()

	_, err = o.pool.SubmitStored(key, func(jobCtx context.Context) (*generator.GenerateOutput, error) {
		job, ok := executor.JobFromContext(jobCtx)
		if !ok {
			return nil, errors.Internalf("job %s is not running on the pool", key)
		}
		o.markRunning(job)
		defer o.markDone(job)
		return o.generator.Generate(jobCtx, &generator.GenerateInput{Settings: s})
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			// another poll for the same key got there first
			return o.report(ctx, key)
		}
		o.forget(key)
		return nil, errors.Wrapf(err, "failed to submit job %s", key)
	}

	slog.Info("generation job started",
		"gen_key", key,
		"seed", s.Seed,
	)

	return jsonOutput(StatusStarted, map[string]string{"start_time": key})
}

// finish pops a finished job, records it and caches the outcome
func (o *orchestrator) finish(ctx context.Context, key string) (*PollOutput, error) {
	o.finishing.Lock()
	defer o.finishing.Unlock()

	// a concurrent poll may have finished it while we waited
	if out, err := o.cached(ctx, key); err == nil || !errors.IsNotFound(err) {
		return out, err
	}

	job, err := o.pool.Pop(key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pop job %s", key)
	}
	s := o.forget(key)

	out, genErr := job.Result()
	result := &results.Result{GenKey: key}
	if genErr != nil {
		result.Error = o.recordFailure(ctx, key, s, genErr)
	} else {
		encoded, err := o.buildArtifact(ctx, out)
		if err != nil {
			result.Error = o.recordFailure(ctx, key, s, err)
		} else {
			result.Artifact = encoded
			slog.Info("generation job finished",
				"gen_key", key,
				"seed_id", out.Spoiler.Settings().SeedID,
				"duration", job.Duration(),
			)
		}
	}

	if _, err := o.resultsRepo.Put(ctx, results.PutInput{Result: result, TTL: o.resultTTL}); err != nil {
		slog.Error("failed to cache generation result",
			"gen_key", key,
			"error", err,
		)
	}

	return resultOutput(result), nil
}

func (o *orchestrator) buildArtifact(ctx context.Context, out *generator.GenerateOutput) (string, error) {
	sp := out.Spoiler
	sp.FlushAllExcessSpoilerData()
	s := sp.Settings()

	spoilerLog, err := sp.JSON()
	if err != nil {
		return "", errors.Wrap(err, "failed to render spoiler log")
	}

	if o.hosted {
		if _, err := o.seedsRepo.Put(ctx, seeds.PutInput{
			SeedID:     s.SeedID,
			Hash:       sp.HashString(),
			SpoilerLog: spoilerLog,
		}); err != nil {
			slog.Error("failed to store seed",
				"seed_id", s.SeedID,
				"error", err,
			)
		}
	}

	if !s.GenerateSpoilerLog {
		spoilerLog, err = generator.Filter(spoilerLog, generator.PublicSections...)
		if err != nil {
			return "", errors.Wrap(err, "failed to trim spoiler log")
		}
	}

	return artifact.Build(&artifact.Artifact{
		Patch:      out.Patch,
		Hash:       sp.HashString(),
		SpoilerLog: spoilerLog,
		SeedID:     s.SeedID,
	})
}

// recordFailure logs a failed generation and returns its display string
func (o *orchestrator) recordFailure(ctx context.Context, key string, s *settings.Settings, cause error) string {
	display := errors.Display(cause)
	slog.Warn("generation job failed",
		"gen_key", key,
		"error", cause,
	)

	if !o.hosted {
		return display
	}

	var encoded string
	if s != nil {
		var err error
		if encoded, err = s.EncodeString(); err != nil {
			slog.Error("failed to encode settings for error log", "gen_key", key, "error", err)
		}
	}
	if _, err := o.errorLogRepo.Record(ctx, errorlog.RecordInput{
		GenKey:    key,
		ErrorData: display,
		Settings:  encoded,
	}); err != nil {
		slog.Error("failed to record generation error",
			"gen_key", key,
			"error", err,
		)
	}
	return display
}

func (o *orchestrator) markRunning(job core.Entity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.currentJob[job.GetID()] = job
	slog.Debug("generation running",
		"gen_key", job.GetID(),
		"type", job.GetType(),
	)
}

// markDone clears the key only while it still belongs to job. A job resubmitted
// under the same key keeps its entry when an abandoned predecessor returns.
func (o *orchestrator) markDone(job core.Entity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.currentJob[job.GetID()] == job {
		delete(o.currentJob, job.GetID())
	}
}

func (o *orchestrator) isCurrent(key string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.currentJob[key]
	return ok
}

func (o *orchestrator) forget(key string) *settings.Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	s := o.requests[key]
	delete(o.requests, key)
	return s
}

func resultOutput(r *results.Result) *PollOutput {
	if r.Failed() {
		return textOutput(StatusFailed, r.Error)
	}
	return textOutput(StatusReady, r.Artifact)
}

func missingKey() *PollOutput {
	return &PollOutput{
		Code:        StatusMissingKey,
		ContentType: ContentTypeJSON,
		Body:        []byte(`{"error":"error"}`),
	}
}

func jsonOutput(code int, v any) (*PollOutput, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal poll response")
	}
	return &PollOutput{Code: code, ContentType: ContentTypeJSON, Body: body}, nil
}

func textOutput(code int, body string) *PollOutput {
	return &PollOutput{Code: code, ContentType: ContentTypeText, Body: []byte(body)}
}
