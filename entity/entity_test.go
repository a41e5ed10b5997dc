package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionInfoRoundTrip(t *testing.T) {
	body := []byte(`{"statement":"p24-102-103","orderId":98765,"sessionId":"abc123",` +
		`"status":2,"amount":1000,"currency":"PLN","date":"202405021218",` +
		`"clientEmail":"customer@example.com","batchId":7,"fee":19,"paymentMethod":154}`)

	var info TransactionInfo
	require.NoError(t, json.Unmarshal(body, &info))

	assert.Equal(t, 98765, info.OrderId)
	assert.Equal(t, "abc123", info.SessionId)
	assert.Equal(t, 2, info.Status)
	assert.Equal(t, 1000, info.Amount)
	assert.Equal(t, 19, info.FeeAmount)

	again, err := json.Marshal(&info)
	require.NoError(t, err)
	var roundTrip TransactionInfo
	require.NoError(t, json.Unmarshal(again, &roundTrip))
	assert.Equal(t, info, roundTrip)
}

func TestRefundInfoRoundTrip(t *testing.T) {
	body := []byte(`{"batchId":7,"requestId":"req-1","date":"2024-05-02",` +
		`"login":"api","description":"partial return","status":1,"amount":500,` +
		`"sessionId":"abc123","orderId":98765,"refundsUuid":"group-1","refundPayment":0}`)

	var info RefundInfo
	require.NoError(t, json.Unmarshal(body, &info))
	assert.Equal(t, 98765, info.OrderId)
	assert.Equal(t, "group-1", info.RefundsUuid)

	again, err := json.Marshal(&info)
	require.NoError(t, err)
	var roundTrip RefundInfo
	require.NoError(t, json.Unmarshal(again, &roundTrip))
	assert.Equal(t, info, roundTrip)
}

func TestReportEntryRoundTrip(t *testing.T) {
	body := []byte(`{"batchId":7,"date":"2024-05-02","type":"sale","amount":10000,` +
		`"fee":190,"currency":"PLN","entries":12,"iban":"PL61109010140000071219812874",` +
		`"ibanOwner":"Shop Ltd"}`)

	var entry ReportEntry
	require.NoError(t, json.Unmarshal(body, &entry))
	assert.Equal(t, 7, entry.BatchId)
	assert.Equal(t, 12, entry.Entries)

	again, err := json.Marshal(&entry)
	require.NoError(t, err)
	var roundTrip ReportEntry
	require.NoError(t, json.Unmarshal(again, &roundTrip))
	assert.Equal(t, entry, roundTrip)
}

func TestBatchDetailsRoundTrip(t *testing.T) {
	body := []byte(`{"batchId":7,"date":"2024-05-02","amount":10500,"fee":199,` +
		`"currency":"PLN",` +
		`"transactions":[{"orderId":98765,"sessionId":"abc123","status":2,"amount":1000,"currency":"PLN"}],` +
		`"refunds":[{"batchId":7,"requestId":"req-1","status":1,"amount":500,"sessionId":"abc123","orderId":98765}]}`)

	var details BatchDetails
	require.NoError(t, json.Unmarshal(body, &details))
	require.Len(t, details.Transactions, 1)
	require.Len(t, details.Refunds, 1)
	assert.Equal(t, 98765, details.Transactions[0].OrderId)
	assert.Equal(t, "req-1", details.Refunds[0].RequestId)

	again, err := json.Marshal(&details)
	require.NoError(t, err)
	var roundTrip BatchDetails
	require.NoError(t, json.Unmarshal(again, &roundTrip))
	assert.Equal(t, details, roundTrip)
}

func TestBlikAliasRoundTrip(t *testing.T) {
	body := []byte(`{"aliasValue":"alias-1","aliasLabel":"my bank","type":"UID",` +
		`"status":"active","email":"customer@example.com","expirationDate":"2026-05-02"}`)

	var alias BlikAlias
	require.NoError(t, json.Unmarshal(body, &alias))
	assert.Equal(t, "alias-1", alias.AliasValue)
	assert.Equal(t, "UID", alias.AliasType)

	again, err := json.Marshal(&alias)
	require.NoError(t, err)
	var roundTrip BlikAlias
	require.NoError(t, json.Unmarshal(again, &roundTrip))
	assert.Equal(t, alias, roundTrip)
}

func TestEnvelopeCarriesRawData(t *testing.T) {
	body := []byte(`{"data":{"token":"token-1"},"responseCode":0}`)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))

	var register RegisterResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &register))
	assert.Equal(t, "token-1", register.Token)
}

func TestEnvelopeErrorBody(t *testing.T) {
	body := []byte(`{"error":"Incorrect authentication","code":401}`)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "Incorrect authentication", envelope.Error)
	assert.Equal(t, 401, envelope.Code)
	assert.Empty(t, envelope.Data)
}
