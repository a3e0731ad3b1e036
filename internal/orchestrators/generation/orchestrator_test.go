package generation_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/junglerando/rando-api/internal/artifact"
	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/executor"
	"github.com/junglerando/rando-api/internal/generator"
	generatormock "github.com/junglerando/rando-api/internal/generator/mock"
	"github.com/junglerando/rando-api/internal/orchestrators/generation"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	"github.com/junglerando/rando-api/internal/pkg/idgen"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/repositories/errorlog"
	errorlogmock "github.com/junglerando/rando-api/internal/repositories/errorlog/mock"
	"github.com/junglerando/rando-api/internal/repositories/results"
	resultsmock "github.com/junglerando/rando-api/internal/repositories/results/mock"
	"github.com/junglerando/rando-api/internal/repositories/seeds"
	seedsmock "github.com/junglerando/rando-api/internal/repositories/seeds/mock"
	"github.com/junglerando/rando-api/internal/testutils"
	"github.com/junglerando/rando-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockGen      *generatormock.MockService
	mockResults  *resultsmock.MockRepository
	mockSeeds    *seedsmock.MockRepository
	mockErrorLog *errorlogmock.MockRepository
	realGen      generator.Service
	pool         *generation.Pool
	gate         chan struct{}
	orchestrator generation.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockGen = generatormock.NewMockService(s.ctrl)
	s.mockResults = resultsmock.NewMockRepository(s.ctrl)
	s.mockSeeds = seedsmock.NewMockRepository(s.ctrl)
	s.mockErrorLog = errorlogmock.NewMockRepository(s.ctrl)
	s.gate = make(chan struct{})

	realGen, err := generator.New(&generator.Config{IDGenerator: idgen.NewSequential("seed")})
	s.Require().NoError(err)
	s.realGen = realGen

	pool, err := executor.New[*generator.GenerateOutput](&executor.Config{
		MaxWorkers: 1,
		Timeout:    5 * time.Second,
	})
	s.Require().NoError(err)
	s.pool = pool

	s.orchestrator = s.newOrchestrator(false)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	select {
	case <-s.gate:
	default:
		close(s.gate)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(s.pool.Shutdown(ctx))
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(hosted bool) generation.Service {
	o, err := generation.NewOrchestrator(&generation.Config{
		Generator:    s.mockGen,
		Pool:         s.pool,
		ResultsRepo:  s.mockResults,
		Clock:        clock.NewFixed(time.Unix(1718000000, 0)),
		Hosted:       hosted,
		SeedsRepo:    s.mockSeeds,
		ErrorLogRepo: s.mockErrorLog,
		ResultTTL:    time.Hour,
		Random:       rng.New(1),
	})
	s.Require().NoError(err)
	return o
}

// generateAfterGate runs the real generator once the suite gate opens.
func (s *OrchestratorTestSuite) generateAfterGate(ctx context.Context, input *generator.GenerateInput) (*generator.GenerateOutput, error) {
	select {
	case <-s.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.realGen.Generate(ctx, input)
}

func (s *OrchestratorTestSuite) waitFinished(key string) {
	s.Require().Eventually(func() bool {
		return s.pool.Done(key)
	}, 5*time.Second, 5*time.Millisecond)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := generation.NewOrchestrator(&generation.Config{
		Generator:   s.mockGen,
		Pool:        s.pool,
		ResultsRepo: s.mockResults,
		Clock:       clock.New(),
		Hosted:      true,
	})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "invalid config")
}

func (s *OrchestratorTestSuite) TestMissingKey() {
	out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusMissingKey, out.Code)
	s.Assert().JSONEq(`{"error":"error"}`, string(out.Body))
	s.Assert().True(out.Terminal())
}

func (s *OrchestratorTestSuite) TestCachedResult() {
	mocks.ExpectCacheHit(s.mockResults, &results.Result{GenKey: "done", Artifact: "UEsDBA==\n"})
	mocks.ExpectCacheHit(s.mockResults, &results.Result{GenKey: "failed", Error: "TimeoutError: Timed out after 5m0s"})

	out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "done"})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusReady, out.Code)
	s.Assert().Equal("UEsDBA==\n", string(out.Body))

	out, err = s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "failed"})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusFailed, out.Code)
	s.Assert().Equal("TimeoutError: Timed out after 5m0s", string(out.Body))
}

func (s *OrchestratorTestSuite) TestCacheError() {
	s.mockResults.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "k"})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestJobLifecycle() {
	key := testutils.TestGenKey
	mocks.ExpectCacheMiss(s.mockResults, key)
	s.mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(s.generateAfterGate)

	var cached *results.Result
	mocks.ExpectResultStored(s.mockResults, func(input results.PutInput) {
		cached = input.Result
		s.Assert().Equal(time.Hour, input.TTL)
	})

	out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: testutils.CreateTestSettingsBody()})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusStarted, out.Code)
	s.Assert().JSONEq(`{"start_time":"`+key+`"}`, string(out.Body))

	s.Require().Eventually(func() bool {
		stats, err := s.orchestrator.Stats(s.ctx)
		return err == nil && len(stats.CurrentJobs) == 1
	}, 5*time.Second, 5*time.Millisecond)

	out, err = s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: key})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusRunning, out.Code)
	s.Assert().JSONEq(`{"status":"RUNNING"}`, string(out.Body))
	s.Assert().False(out.Terminal())

	close(s.gate)
	s.waitFinished(key)

	out, err = s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: key})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusReady, out.Code, string(out.Body))
	s.Require().NotNil(cached)
	s.Assert().Equal(cached.Artifact, string(out.Body))

	a, err := artifact.Read(string(out.Body))
	s.Require().NoError(err)
	s.Assert().Equal("seed_1", a.SeedID)
	s.Assert().Regexp(`^\[\d, \d, \d, \d, \d\]$`, a.Hash)

	// The test body turns the full spoiler log off
	var sections map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(a.SpoilerLog, &sections))
	s.Assert().Contains(sections, generator.SectionSettings)
	s.Assert().NotContains(sections, generator.SectionShopPrices)
	s.Assert().NotContains(sections, generator.SectionGeneration)

	_, ok := s.pool.State(key)
	s.Assert().False(ok, "finished job should be popped")
}

func (s *OrchestratorTestSuite) TestFullSpoilerLogKept() {
	mocks.ExpectCacheMiss(s.mockResults, "full")
	s.mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(s.realGen.Generate)
	s.mockResults.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&results.PutOutput{}, nil)

	out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "full", Body: []byte(`{"seed": 99}`)})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusStarted, out.Code)
	s.waitFinished("full")

	out, err = s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "full"})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusReady, out.Code, string(out.Body))

	a, err := artifact.Read(string(out.Body))
	s.Require().NoError(err)
	var sections map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(a.SpoilerLog, &sections))
	s.Assert().Contains(sections, generator.SectionShopPrices)
	s.Assert().NotContains(sections, generator.SectionGeneration)
}

func (s *OrchestratorTestSuite) TestQueuedPosition() {
	mocks.ExpectCacheMiss(s.mockResults, "first")
	mocks.ExpectCacheMiss(s.mockResults, "second")
	s.mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(s.generateAfterGate).Times(2)
	s.mockResults.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&results.PutOutput{}, nil).AnyTimes()

	for _, key := range []string{"first", "second"} {
		out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: []byte(`{"seed": 5}`)})
		s.Require().NoError(err)
		s.Require().Equal(generation.StatusStarted, out.Code)
	}

	s.Require().Eventually(func() bool {
		state, _ := s.pool.State("first")
		return state == executor.StateRunning
	}, 5*time.Second, 5*time.Millisecond)

	out, err := s.orchestrator.Status(s.ctx, &generation.StatusInput{GenKey: "second"})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusQueued, out.Code)
	s.Assert().JSONEq(`{"status":"PENDING","position":1}`, string(out.Body))
}

func (s *OrchestratorTestSuite) TestStatusUnknownKey() {
	mocks.ExpectCacheMiss(s.mockResults, "ghost")

	_, err := s.orchestrator.Status(s.ctx, &generation.StatusInput{GenKey: "ghost"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestInvalidBody() {
	mocks.ExpectCacheMiss(s.mockResults, "bad")

	out, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "bad", Body: []byte(`{not json`)})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusFailed, out.Code)
	s.Assert().Contains(string(out.Body), "ValidationError: ")

	_, ok := s.pool.State("bad")
	s.Assert().False(ok)
}

func (s *OrchestratorTestSuite) TestFailureRecordedWhenHosted() {
	o := s.newOrchestrator(true)
	key := "doomed"
	mocks.ExpectCacheMiss(s.mockResults, key)
	s.mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.PlacementFailed("no fairy slots left"))
	mocks.ExpectErrorRecorded(s.mockErrorLog, func(input errorlog.RecordInput) {
		s.Assert().Equal(key, input.GenKey)
		s.Assert().Equal("PlacementError: no fairy slots left", input.ErrorData)
		s.Assert().NotEmpty(input.Settings)
	})
	mocks.ExpectResultStored(s.mockResults, func(input results.PutInput) {
		s.Assert().True(input.Result.Failed())
	})

	out, err := o.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: testutils.CreateTestSettingsBody()})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusStarted, out.Code)
	s.waitFinished(key)

	out, err = o.Poll(s.ctx, &generation.PollInput{GenKey: key})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusFailed, out.Code)
	s.Assert().Equal("PlacementError: no fairy slots left", string(out.Body))
}

func (s *OrchestratorTestSuite) TestSeedStoredWhenHosted() {
	o := s.newOrchestrator(true)
	key := "hosted"
	mocks.ExpectCacheMiss(s.mockResults, key)
	s.mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(s.realGen.Generate)
	s.mockSeeds.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input seeds.PutInput) (*seeds.PutOutput, error) {
			s.Assert().Equal("seed_1", input.SeedID)
			// stored logs keep every section even when the download is trimmed
			s.Assert().Contains(string(input.SpoilerLog), generator.SectionShopPrices)
			return &seeds.PutOutput{}, nil
		})
	s.mockResults.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&results.PutOutput{}, nil)

	_, err := o.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: testutils.CreateTestSettingsBody()})
	s.Require().NoError(err)
	s.waitFinished(key)

	out, err := o.Poll(s.ctx, &generation.PollInput{GenKey: key})
	s.Require().NoError(err)
	s.Assert().Equal(generation.StatusReady, out.Code, string(out.Body))
}

func (s *OrchestratorTestSuite) TestUnknownKeyWithoutSettings() {
	mocks.ExpectCacheMiss(s.mockResults, "idle")

	_, err := s.orchestrator.Poll(s.ctx, &generation.PollInput{GenKey: "idle"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))

	_, ok := s.pool.State("idle")
	s.Assert().False(ok, "a request without settings must not start a job")
}

func (s *OrchestratorTestSuite) TestAbandonedJobDoesNotClearResubmittedJob() {
	pool, err := executor.New[*generator.GenerateOutput](&executor.Config{
		MaxWorkers: 1,
		Timeout:    500 * time.Millisecond,
	})
	s.Require().NoError(err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Assert().NoError(pool.Shutdown(ctx))
	}()

	o, err := generation.NewOrchestrator(&generation.Config{
		Generator:   s.mockGen,
		Pool:        pool,
		ResultsRepo: s.mockResults,
		Clock:       clock.New(),
		Random:      rng.New(1),
	})
	s.Require().NoError(err)

	key := "stubborn"
	release := make(chan struct{})
	returned := make(chan struct{})
	mocks.ExpectCacheMiss(s.mockResults, key)
	mocks.ExpectResultStored(s.mockResults, func(input results.PutInput) {
		s.Assert().Contains(input.Result.Error, "TimeoutError: ")
	})
	gomock.InOrder(
		s.mockGen.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *generator.GenerateInput) (*generator.GenerateOutput, error) {
				defer close(returned)
				<-release
				return nil, errors.Internal("too late")
			}),
		s.mockGen.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(s.generateAfterGate),
	)

	out, err := o.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: []byte(`{"seed": 5}`)})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusStarted, out.Code)

	s.Require().Eventually(func() bool {
		return pool.Done(key)
	}, 5*time.Second, 5*time.Millisecond)
	out, err = o.Poll(s.ctx, &generation.PollInput{GenKey: key})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusFailed, out.Code)

	out, err = o.Poll(s.ctx, &generation.PollInput{GenKey: key, Body: []byte(`{"seed": 5}`)})
	s.Require().NoError(err)
	s.Require().Equal(generation.StatusStarted, out.Code)

	s.Require().Eventually(func() bool {
		out, err := o.Status(s.ctx, &generation.StatusInput{GenKey: key})
		return err == nil && out.Code == generation.StatusRunning
	}, 5*time.Second, 5*time.Millisecond)

	// the first job finally returns while the second is generating
	close(release)
	<-returned
	s.Assert().Never(func() bool {
		out, err := o.Status(s.ctx, &generation.StatusInput{GenKey: key})
		return err != nil || out.Code != generation.StatusRunning
	}, 50*time.Millisecond, 5*time.Millisecond)

	stats, err := o.Stats(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal([]string{key}, stats.CurrentJobs)

	close(s.gate)
}
