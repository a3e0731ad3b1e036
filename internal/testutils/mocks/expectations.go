// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/repositories/errorlog"
	errorlogmock "github.com/junglerando/rando-api/internal/repositories/errorlog/mock"
	"github.com/junglerando/rando-api/internal/repositories/results"
	resultsmock "github.com/junglerando/rando-api/internal/repositories/results/mock"
)

// ExpectCacheMiss makes every result lookup for genKey miss
func ExpectCacheMiss(mockResults *resultsmock.MockRepository, genKey string) {
	mockResults.EXPECT().
		Get(gomock.Any(), results.GetInput{GenKey: genKey}).
		Return(nil, errors.NotFoundf("no result for %s", genKey)).
		AnyTimes()
}

// ExpectCacheHit returns result for genKey once
func ExpectCacheHit(mockResults *resultsmock.MockRepository, result *results.Result) {
	mockResults.EXPECT().
		Get(gomock.Any(), results.GetInput{GenKey: result.GenKey}).
		Return(&results.GetOutput{Result: result}, nil)
}

// ExpectResultStored accepts one Put and hands the stored result to check
func ExpectResultStored(mockResults *resultsmock.MockRepository, check func(input results.PutInput)) {
	mockResults.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input results.PutInput) (*results.PutOutput, error) {
			if check != nil {
				check(input)
			}
			return &results.PutOutput{Result: input.Result}, nil
		})
}

// ExpectErrorRecorded accepts one error log entry and hands it to check
func ExpectErrorRecorded(mockErrorLog *errorlogmock.MockRepository, check func(input errorlog.RecordInput)) {
	mockErrorLog.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input errorlog.RecordInput) (*errorlog.RecordOutput, error) {
			if check != nil {
				check(input)
			}
			return &errorlog.RecordOutput{Entry: &errorlog.Entry{
				GenKey:    input.GenKey,
				ErrorData: input.ErrorData,
				Settings:  input.Settings,
			}}, nil
		})
}
