package v1alpha1_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/executor"
	"github.com/junglerando/rando-api/internal/handlers/api/v1alpha1"
	"github.com/junglerando/rando-api/internal/orchestrators/generation"
	generationmock "github.com/junglerando/rando-api/internal/orchestrators/generation/mock"
	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/settings"
)

type GenerateHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockGen *generationmock.MockService
	server  *httptest.Server
}

func TestGenerateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GenerateHandlerTestSuite))
}

func (s *GenerateHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGen = generationmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewGenerateHandler(&v1alpha1.GenerateHandlerConfig{
		GenerationService: s.mockGen,
		CORSOrigin:        "https://rando.example",
		PollInterval:      5 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.server = httptest.NewServer(handler.Routes())
}

func (s *GenerateHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *GenerateHandlerTestSuite) do(method, path, body string) (*http.Response, string) {
	req, err := http.NewRequest(method, s.server.URL+path, strings.NewReader(body))
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, string(data)
}

func jsonPoll(code int, body string) *generation.PollOutput {
	return &generation.PollOutput{Code: code, ContentType: generation.ContentTypeJSON, Body: []byte(body)}
}

func textPoll(code int, body string) *generation.PollOutput {
	return &generation.PollOutput{Code: code, ContentType: generation.ContentTypeText, Body: []byte(body)}
}

func (s *GenerateHandlerTestSuite) TestConfigValidation() {
	_, err := v1alpha1.NewGenerateHandler(&v1alpha1.GenerateHandlerConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *GenerateHandlerTestSuite) TestGenerateStatusCodes() {
	testCases := []struct {
		name   string
		method string
		out    *generation.PollOutput
	}{
		{name: "started", method: http.MethodPost, out: jsonPoll(201, `{"start_time":"1718000000000"}`)},
		{name: "queued", method: http.MethodGet, out: jsonPoll(202, `{"status":"PENDING","position":1}`)},
		{name: "running", method: http.MethodGet, out: jsonPoll(203, `{"status":"RUNNING"}`)},
		{name: "ready", method: http.MethodGet, out: textPoll(200, "UEsDBA==\n")},
		{name: "failed", method: http.MethodGet, out: textPoll(208, "TimeoutError: Timed out after 5m0s")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockGen.EXPECT().
				Poll(gomock.Any(), &generation.PollInput{GenKey: "1718000000000", Body: []byte(`{"seed":1}`)}).
				Return(tc.out, nil)

			resp, body := s.do(tc.method, "/generate?gen_key=1718000000000", " {\"seed\":1}\n")
			s.Assert().Equal(tc.out.Code, resp.StatusCode)
			s.Assert().Equal(string(tc.out.Body), body)
			s.Assert().Equal(tc.out.ContentType, resp.Header.Get("Content-Type"))
			s.Assert().Equal("https://rando.example", resp.Header.Get("Access-Control-Allow-Origin"))
		})
	}
}

func (s *GenerateHandlerTestSuite) TestGenerateWrappedSettings() {
	const wrapped = `{"post_body": "{\"seed\": 1234, \"move_rando\": \"off\"}"}`
	s.mockGen.EXPECT().
		Poll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *generation.PollInput) (*generation.PollOutput, error) {
			s.Assert().Equal("1718000000000", input.GenKey)
			got, err := settings.FromPostBody(input.Body, rng.New(1))
			if !s.Assert().NoError(err) {
				return nil, err
			}
			s.Assert().Equal(int64(1234), got.Seed)
			s.Assert().Equal(settings.MoveRandoOff, got.MoveRando)
			return jsonPoll(201, `{"start_time":"1718000000000"}`), nil
		})

	resp, body := s.do(http.MethodPost, "/generate?gen_key=1718000000000", wrapped)
	s.Assert().Equal(201, resp.StatusCode)
	s.Assert().JSONEq(`{"start_time":"1718000000000"}`, body)
}

func (s *GenerateHandlerTestSuite) TestGenerateMissingKey() {
	s.mockGen.EXPECT().
		Poll(gomock.Any(), &generation.PollInput{}).
		Return(jsonPoll(205, `{"error":"error"}`), nil)

	resp, body := s.do(http.MethodGet, "/generate", "")
	s.Assert().Equal(205, resp.StatusCode)
	s.Assert().JSONEq(`{"error":"error"}`, body)
}

func (s *GenerateHandlerTestSuite) TestGenerateOptions() {
	resp, body := s.do(http.MethodOptions, "/generate", "")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Empty(body)
	s.Assert().Equal("GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	s.Assert().Equal("Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}

func (s *GenerateHandlerTestSuite) TestGenerateMethodNotAllowed() {
	resp, _ := s.do(http.MethodDelete, "/generate?gen_key=1", "")
	s.Assert().Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *GenerateHandlerTestSuite) TestGenerateServiceError() {
	s.mockGen.EXPECT().
		Poll(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	resp, body := s.do(http.MethodGet, "/generate?gen_key=1", "")
	s.Assert().Equal(http.StatusServiceUnavailable, resp.StatusCode)
	s.Assert().Contains(body, "redis down")
}

func (s *GenerateHandlerTestSuite) TestGenerateUnknownKeyWithoutSettings() {
	s.mockGen.EXPECT().
		Poll(gomock.Any(), &generation.PollInput{GenKey: "ghost"}).
		Return(nil, errors.NotFound("no job for ghost; send settings in the body to start one"))

	resp, body := s.do(http.MethodGet, "/generate?gen_key=ghost", "")
	s.Assert().Equal(http.StatusNotFound, resp.StatusCode)
	s.Assert().Contains(body, "send settings")
}

func (s *GenerateHandlerTestSuite) TestHealth() {
	s.mockGen.EXPECT().
		Stats(gomock.Any()).
		Return(&generation.StatsOutput{
			Stats:       executor.Stats{Pending: 2, Running: 1},
			CurrentJobs: []string{"1718000000000"},
		}, nil)

	resp, body := s.do(http.MethodGet, "/health", "")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().JSONEq(`{"status":"ok","pending":2,"running":1,"finished":0,"current_jobs":["1718000000000"]}`, body)
}

func (s *GenerateHandlerTestSuite) dial(path string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + path
	header := http.Header{"Origin": []string{"https://rando.example"}}
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if resp != nil {
		_ = resp.Body.Close()
	}
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *GenerateHandlerTestSuite) readMessage(conn *websocket.Conn) map[string]json.RawMessage {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	_, data, err := conn.ReadMessage()
	s.Require().NoError(err)
	var msg map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(data, &msg))
	return msg
}

func (s *GenerateHandlerTestSuite) TestStreamUntilReady() {
	gomock.InOrder(
		s.mockGen.EXPECT().Status(gomock.Any(), &generation.StatusInput{GenKey: "k"}).
			Return(jsonPoll(202, `{"status":"PENDING","position":1}`), nil).Times(2),
		s.mockGen.EXPECT().Status(gomock.Any(), &generation.StatusInput{GenKey: "k"}).
			Return(jsonPoll(203, `{"status":"RUNNING"}`), nil),
		s.mockGen.EXPECT().Status(gomock.Any(), &generation.StatusInput{GenKey: "k"}).
			Return(textPoll(200, "UEsDBA==\n"), nil),
	)

	conn := s.dial("/generate/ws?gen_key=k")

	// Repeated states are sent once
	msg := s.readMessage(conn)
	s.Assert().JSONEq(`202`, string(msg["code"]))
	s.Assert().JSONEq(`{"status":"PENDING","position":1}`, string(msg["status"]))

	msg = s.readMessage(conn)
	s.Assert().JSONEq(`203`, string(msg["code"]))

	msg = s.readMessage(conn)
	s.Assert().JSONEq(`200`, string(msg["code"]))
	s.Assert().NotContains(msg, "status")

	_, _, err := conn.ReadMessage()
	s.Assert().True(websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func (s *GenerateHandlerTestSuite) TestStreamFailure() {
	s.mockGen.EXPECT().Status(gomock.Any(), gomock.Any()).
		Return(textPoll(208, "PlacementError: no fairy slots left"), nil)

	conn := s.dial("/generate/ws?gen_key=k")
	msg := s.readMessage(conn)
	s.Assert().JSONEq(`208`, string(msg["code"]))
	s.Assert().JSONEq(`"PlacementError: no fairy slots left"`, string(msg["error"]))
}

func (s *GenerateHandlerTestSuite) TestStreamUnknownKey() {
	s.mockGen.EXPECT().Status(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no job for ghost"))

	conn := s.dial("/generate/ws?gen_key=ghost")
	msg := s.readMessage(conn)
	s.Assert().JSONEq(`404`, string(msg["code"]))
}

func (s *GenerateHandlerTestSuite) TestStreamMissingKey() {
	resp, body := s.do(http.MethodGet, "/generate/ws", "")
	s.Assert().Equal(205, resp.StatusCode)
	s.Assert().JSONEq(`{"error":"error"}`, body)
}

func (s *GenerateHandlerTestSuite) TestStreamRejectsForeignOrigin() {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/generate/ws?gen_key=k"
	_, resp, err := websocket.DefaultDialer.DialContext(context.Background(), url, http.Header{"Origin": []string{"https://evil.example"}})
	s.Require().Error(err)
	s.Require().NotNil(resp)
	_ = resp.Body.Close()
	s.Assert().Equal(http.StatusForbidden, resp.StatusCode)
}
