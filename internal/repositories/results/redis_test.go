package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/clock"
	"github.com/junglerando/rando-api/internal/repositories/results"
	"github.com/junglerando/rando-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	cleanup func()
	clock   *clock.Fixed
	repo    results.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	repo, err := results.NewRedisRepository(&results.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := results.NewRedisRepository(&results.Config{Clock: s.clock})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "redis client is required")
}

func (s *RedisRepositoryTestSuite) TestPutAndGet() {
	out, err := s.repo.Put(s.ctx, results.PutInput{
		Result: &results.Result{GenKey: testutils.TestGenKey, Artifact: "UEsDBA==\n"},
		TTL:    10 * time.Minute,
	})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Now(), out.Result.CreatedAt)
	s.Assert().Equal(s.clock.Now().Add(10*time.Minute), out.Result.ExpiresAt)

	got, err := s.repo.Get(s.ctx, results.GetInput{GenKey: testutils.TestGenKey})
	s.Require().NoError(err)
	s.Assert().Equal("UEsDBA==\n", got.Result.Artifact)
	s.Assert().False(got.Result.Failed())
	s.Assert().Equal(10*time.Minute, s.mr.TTL("result:"+testutils.TestGenKey))
}

func (s *RedisRepositoryTestSuite) TestFailedResult() {
	_, err := s.repo.Put(s.ctx, results.PutInput{
		Result: &results.Result{GenKey: "42", Error: "TimeoutError: Timed out after 5m0s"},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, results.GetInput{GenKey: "42"})
	s.Require().NoError(err)
	s.Assert().True(got.Result.Failed())
	s.Assert().Equal(results.DefaultTTL, s.mr.TTL("result:42"))
}

func (s *RedisRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Put(s.ctx, results.PutInput{
		Result: &results.Result{GenKey: "short", Artifact: "x"},
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)
	_, err = s.repo.Get(s.ctx, results.GetInput{GenKey: "short"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	testCases := []struct {
		name  string
		input results.PutInput
	}{
		{name: "nil result", input: results.PutInput{}},
		{name: "missing key", input: results.PutInput{Result: &results.Result{Artifact: "x"}}},
		{name: "both outcomes", input: results.PutInput{Result: &results.Result{GenKey: "k", Artifact: "x", Error: "y"}}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Put(s.ctx, tc.input)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Put(s.ctx, results.PutInput{Result: &results.Result{GenKey: "gone", Artifact: "x"}})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, results.DeleteInput{GenKey: "gone"})
	s.Require().NoError(err)
	s.Assert().True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, results.DeleteInput{GenKey: "gone"})
	s.Require().NoError(err)
	s.Assert().False(out.Deleted)

	_, err = s.repo.Get(s.ctx, results.GetInput{GenKey: "gone"})
	s.Assert().True(errors.IsNotFound(err))
}
