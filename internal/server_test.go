package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"przelewy/config"
	"przelewy/entity"
	"przelewy/services"
)

type stubPayments struct {
	services.Payments
	registerResult *entity.RegisterResponse
	registerErr    error
	infoResult     *entity.TransactionInfo
	infoErr        error
}

func (s *stubPayments) RegisterTransaction(_ context.Context, _ *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	return s.registerResult, s.registerErr
}

func (s *stubPayments) TransactionBySession(_ context.Context, _ string) (*entity.TransactionInfo, error) {
	return s.infoResult, s.infoErr
}

func newTestServer(payments services.Payments) *httprouter.Router {
	server := NewServer(&config.Config{})
	server.SetLogger(NewLogger("server", false, nil))
	server.SetPaymentsService(payments)
	router := httprouter.New()
	server.Register(router)
	return router
}

func TestRegisterHandlerReturnsToken(t *testing.T) {
	router := newTestServer(&stubPayments{registerResult: &entity.RegisterResponse{Token: "token-1"}})

	request := httptest.NewRequest(http.MethodPost, "/transaction/register", strings.NewReader(`{"sessionId":"abc123","amount":1000,"currency":"PLN","email":"customer@example.com"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var response entity.RegisterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "token-1", response.Token)
}

func TestRegisterHandlerRejectsBadBody(t *testing.T) {
	router := newTestServer(&stubPayments{})

	request := httptest.NewRequest(http.MethodPost, "/transaction/register", strings.NewReader("not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &ValidationError{Field: "amount", Reason: "is empty"}, http.StatusBadRequest},
		{"configuration", &ConfigurationError{Field: "crc key"}, http.StatusServiceUnavailable},
		{"provider", &ProviderError{Operation: "transaction/register", Status: 401, Body: "denied"}, http.StatusBadGateway},
		{"deserialization", &DeserializationError{Operation: "transaction/register"}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestServer(&stubPayments{registerErr: tc.err})

			request := httptest.NewRequest(http.MethodPost, "/transaction/register", strings.NewReader(`{}`))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tc.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "error")
		})
	}
}

func TestTransactionStatusHandler(t *testing.T) {
	router := newTestServer(&stubPayments{infoResult: &entity.TransactionInfo{SessionId: "abc123", Status: 2, Amount: 1000}})

	request := httptest.NewRequest(http.MethodGet, "/transaction/abc123", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	var info entity.TransactionInfo
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &info))
	assert.Equal(t, 2, info.Status)
}
