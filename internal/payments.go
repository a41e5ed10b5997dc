package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gitee.com/golang-module/dongle"
	"github.com/google/uuid"

	"przelewy/config"
	"przelewy/entity"
	"przelewy/services"
)

// Payments is the Przelewy24 API client. Effective credentials are resolved
// fresh for every call and the signing functions are pure, so concurrent
// calls need no locking; the HTTP client connection pool is the only shared
// resource.
type Payments struct {
	conf       *config.Config
	site       *entity.MerchantSettings
	database   services.Database
	logger     services.LogHandler
	httpClient *http.Client
}

// NewPayments creates a new Przelewy24 client with a configured HTTP client.
// The request timeout comes from configuration so that callers control how
// long a provider round trip may take; contexts passed to operations cancel
// earlier when needed.
func NewPayments(conf *config.Config) *Payments {
	timeout := time.Duration(conf.Przelewy24.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Payments{
		conf:   conf,
		logger: NewLogger("payments", conf.IsDebug, nil),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}
}

var _ services.Payments = (*Payments)(nil)

func (p *Payments) SetDatabase(database services.Database) {
	p.database = database
}

func (p *Payments) SetLogger(logger services.LogHandler) {
	p.logger = logger
}

// SetMerchantSettings attaches site-level credentials that take precedence
// over process configuration during settings resolution.
func (p *Payments) SetMerchantSettings(site *entity.MerchantSettings) {
	p.site = site
}

func (p *Payments) resolve() EffectiveSettings {
	return ResolveSettings(p.site, p.conf)
}

// RegisterTransaction registers a new transaction with the provider and
// returns the payment page token. An empty session id is replaced with a
// generated unique one before signing; a registration must never be resent
// with the same session id, which is also why no operation here retries.
func (p *Payments) RegisterTransaction(ctx context.Context, request *entity.RegisterRequest) (*entity.RegisterResponse, error) {
	settings := p.resolve()
	merchantId, posId, crc, err := settings.SigningCredentials()
	if err != nil {
		return nil, err
	}
	if request.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be a positive integer in the currency minor unit"}
	}
	if request.Currency == "" {
		return nil, &ValidationError{Field: "currency", Reason: "is empty"}
	}
	if request.Email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is empty"}
	}

	registration := *request
	if registration.SessionId == "" {
		registration.SessionId = uuid.NewString()
		p.logger.Debug(fmt.Sprintf("generated session id %s", masked(registration.SessionId)))
	}
	// sign the values actually sent, not the caller zero values
	if registration.MerchantId == 0 {
		registration.MerchantId = merchantId
	}
	if registration.PosId == 0 {
		registration.PosId = posId
	}
	registration.Sign = RegisterSign(registration.SessionId, registration.MerchantId, registration.Amount, registration.Currency, crc)

	p.logger.Info(fmt.Sprintf("register transaction: session %s; amount %d %s", masked(registration.SessionId), registration.Amount, registration.Currency))

	var result entity.RegisterResponse
	err = p.call(ctx, &settings, "transaction/register", http.MethodPost, "transaction/register", registerForm(&registration), &result)
	if err != nil {
		return nil, err
	}

	p.trackRegistration(ctx, &registration, result.Token)

	return &result, nil
}

// VerifyTransaction confirms a completed payment. The signature covers the
// provider order number instead of the merchant id.
func (p *Payments) VerifyTransaction(ctx context.Context, request *entity.VerifyRequest) (*entity.VerifyResponse, error) {
	settings := p.resolve()
	merchantId, posId, crc, err := settings.SigningCredentials()
	if err != nil {
		return nil, err
	}
	if request.SessionId == "" {
		return nil, &ValidationError{Field: "session id", Reason: "is empty"}
	}
	if request.OrderId <= 0 {
		return nil, &ValidationError{Field: "order id", Reason: "is empty"}
	}
	if request.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be a positive integer in the currency minor unit"}
	}
	if request.Currency == "" {
		return nil, &ValidationError{Field: "currency", Reason: "is empty"}
	}

	verification := *request
	if verification.MerchantId == 0 {
		verification.MerchantId = merchantId
	}
	if verification.PosId == 0 {
		verification.PosId = posId
	}
	verification.Sign = VerifySign(verification.SessionId, verification.OrderId, verification.Amount, verification.Currency, crc)

	p.logger.Info(fmt.Sprintf("verify transaction: session %s; order %d", masked(verification.SessionId), verification.OrderId))

	var result entity.VerifyResponse
	err = p.call(ctx, &settings, "transaction/verify", http.MethodPut, "transaction/verify", &verification, &result)
	if err != nil {
		return nil, err
	}

	if p.database != nil {
		if err := p.database.UpdateTransactionStatus(ctx, verification.SessionId, result.Status, verification.OrderId); err != nil {
			p.logger.Error("update transaction status", err)
		}
	}

	return &result, nil
}

// TransactionBySession fetches the provider view of a registered transaction.
func (p *Payments) TransactionBySession(ctx context.Context, sessionId string) (*entity.TransactionInfo, error) {
	if sessionId == "" {
		return nil, &ValidationError{Field: "session id", Reason: "is empty"}
	}
	settings := p.resolve()

	var result entity.TransactionInfo
	err := p.call(ctx, &settings, "transaction/by/sessionId", http.MethodGet, "transaction/by/sessionId/"+url.PathEscape(sessionId), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RefundTransaction requests refunds for one or more completed transactions.
// Request and group identifiers are generated when the caller leaves them
// empty; the provider requires both to be unique per attempt.
func (p *Payments) RefundTransaction(ctx context.Context, request *entity.RefundRequest) ([]entity.RefundResult, error) {
	if len(request.Refunds) == 0 {
		return nil, &ValidationError{Field: "refunds", Reason: "is empty"}
	}
	for _, item := range request.Refunds {
		if item.Amount <= 0 {
			return nil, &ValidationError{Field: "refund amount", Reason: "must be a positive integer in the currency minor unit"}
		}
		if item.OrderId <= 0 && item.SessionId == "" {
			return nil, &ValidationError{Field: "refund", Reason: "needs an order id or a session id"}
		}
	}
	settings := p.resolve()

	refund := *request
	if refund.RequestId == "" {
		refund.RequestId = uuid.NewString()
	}
	if refund.RefundsUuid == "" {
		refund.RefundsUuid = uuid.NewString()
	}

	p.logger.Info(fmt.Sprintf("refund request %s: %d item(s)", refund.RequestId, len(refund.Refunds)))

	var results []entity.RefundResult
	err := p.call(ctx, &settings, "transaction/refund", http.MethodPost, "transaction/refund", &refund, &results)
	if err != nil {
		return nil, err
	}

	p.trackRefunds(ctx, &refund, results)

	return results, nil
}

// RefundsByOrder lists refunds recorded by the provider for an order.
func (p *Payments) RefundsByOrder(ctx context.Context, orderId int) ([]entity.RefundInfo, error) {
	if orderId <= 0 {
		return nil, &ValidationError{Field: "order id", Reason: "is empty"}
	}
	settings := p.resolve()

	var results []entity.RefundInfo
	err := p.call(ctx, &settings, "refund/by/orderId", http.MethodGet, "refund/by/orderId/"+strconv.Itoa(orderId), nil, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// PaymentMethods lists payment channels available to the merchant account.
// Amount and currency narrow the list to methods valid for that payment.
func (p *Payments) PaymentMethods(ctx context.Context, lang string, amount int, currency string) ([]entity.PaymentMethod, error) {
	if lang == "" {
		lang = "pl"
	}
	settings := p.resolve()

	path := "payment/methods/" + url.PathEscape(lang)
	query := url.Values{}
	if amount > 0 {
		query.Set("amount", strconv.Itoa(amount))
	}
	if currency != "" {
		query.Set("currency", currency)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var results []entity.PaymentMethod
	err := p.call(ctx, &settings, "payment/methods", http.MethodGet, path, nil, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CardInfo fetches stored card details for an order.
func (p *Payments) CardInfo(ctx context.Context, orderId int) (*entity.CardInfo, error) {
	if orderId <= 0 {
		return nil, &ValidationError{Field: "order id", Reason: "is empty"}
	}
	settings := p.resolve()

	var result entity.CardInfo
	err := p.call(ctx, &settings, "card/info", http.MethodGet, "card/info/"+strconv.Itoa(orderId), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ChargeCardWith3ds charges a registered transaction with 3DS authentication.
// The response carries the issuer redirect URL for the customer.
func (p *Payments) ChargeCardWith3ds(ctx context.Context, request *entity.CardChargeRequest) (*entity.CardChargeResponse, error) {
	return p.chargeCard(ctx, "card/chargeWith3ds", request)
}

// ChargeCard charges a registered transaction without 3DS authentication.
func (p *Payments) ChargeCard(ctx context.Context, request *entity.CardChargeRequest) (*entity.CardChargeResponse, error) {
	return p.chargeCard(ctx, "card/charge", request)
}

func (p *Payments) chargeCard(ctx context.Context, operation string, request *entity.CardChargeRequest) (*entity.CardChargeResponse, error) {
	if request.Token == "" {
		return nil, &ValidationError{Field: "token", Reason: "is empty"}
	}
	settings := p.resolve()

	p.logger.Info(fmt.Sprintf("%s: token %s", operation, masked(request.Token)))

	var result entity.CardChargeResponse
	err := p.call(ctx, &settings, operation, http.MethodPost, operation, request, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PayCard processes raw card data for a registered transaction.
func (p *Payments) PayCard(ctx context.Context, request *entity.CardPayRequest) (*entity.CardChargeResponse, error) {
	if request.TransactionToken == "" {
		return nil, &ValidationError{Field: "transaction token", Reason: "is empty"}
	}
	if request.CardNumber == "" || request.CardDate == "" || request.Cvv == "" {
		return nil, &ValidationError{Field: "card data", Reason: "is incomplete"}
	}
	settings := p.resolve()

	p.logger.Info(fmt.Sprintf("card/pay: token %s", masked(request.TransactionToken)))

	var result entity.CardChargeResponse
	err := p.call(ctx, &settings, "card/pay", http.MethodPost, "card/pay", request, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ChargeBlikByCode charges a registered transaction with a six digit BLIK
// code typed by the customer.
func (p *Payments) ChargeBlikByCode(ctx context.Context, request *entity.BlikChargeByCode) (*entity.BlikChargeResponse, error) {
	if request.Token == "" {
		return nil, &ValidationError{Field: "token", Reason: "is empty"}
	}
	if len(request.BlikCode) != 6 {
		return nil, &ValidationError{Field: "blik code", Reason: "must be six digits"}
	}
	settings := p.resolve()

	p.logger.Info(fmt.Sprintf("blik charge by code: token %s", masked(request.Token)))

	var result entity.BlikChargeResponse
	err := p.call(ctx, &settings, "paymentMethod/blik/chargeByCode", http.MethodPost, "paymentMethod/blik/chargeByCode", request, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ChargeBlikByAlias charges a registered transaction with a stored alias,
// without the customer typing a code.
func (p *Payments) ChargeBlikByAlias(ctx context.Context, request *entity.BlikChargeByAlias) (*entity.BlikChargeResponse, error) {
	if request.Token == "" {
		return nil, &ValidationError{Field: "token", Reason: "is empty"}
	}
	if request.AliasValue == "" {
		return nil, &ValidationError{Field: "alias value", Reason: "is empty"}
	}
	settings := p.resolve()

	p.logger.Info(fmt.Sprintf("blik charge by alias: token %s", masked(request.Token)))

	var result entity.BlikChargeResponse
	err := p.call(ctx, &settings, "paymentMethod/blik/chargeByAlias", http.MethodPost, "paymentMethod/blik/chargeByAlias", request, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BlikAliasesByEmail lists BLIK aliases stored for a customer email. With
// custom set, merchant-defined alias labels are returned instead of the
// standard ones.
func (p *Payments) BlikAliasesByEmail(ctx context.Context, email string, custom bool) ([]entity.BlikAlias, error) {
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: "is empty"}
	}
	settings := p.resolve()

	path := "paymentMethod/blik/getAliasesByEmail/" + url.PathEscape(email)
	if custom {
		path += "/custom"
	}

	var results []entity.BlikAlias
	err := p.call(ctx, &settings, "paymentMethod/blik/getAliasesByEmail", http.MethodGet, path, nil, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ReportHistory lists settlement batches transferred in the filter period.
func (p *Payments) ReportHistory(ctx context.Context, filter *entity.ReportFilter) ([]entity.ReportEntry, error) {
	if filter == nil || filter.DateFrom == "" || filter.DateTo == "" {
		return nil, &ValidationError{Field: "date range", Reason: "is empty"}
	}
	settings := p.resolve()

	query := url.Values{}
	query.Set("dateFrom", filter.DateFrom)
	query.Set("dateTo", filter.DateTo)
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}

	var results []entity.ReportEntry
	err := p.call(ctx, &settings, "report/history", http.MethodGet, "report/history?"+query.Encode(), nil, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// BatchDetails fetches the transactions and refunds settled in one batch.
func (p *Payments) BatchDetails(ctx context.Context, batchId int) (*entity.BatchDetails, error) {
	if batchId <= 0 {
		return nil, &ValidationError{Field: "batch id", Reason: "is empty"}
	}
	settings := p.resolve()

	var result entity.BatchDetails
	err := p.call(ctx, &settings, "report/batch/details", http.MethodGet, "report/batch/details/"+strconv.Itoa(batchId), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// call performs one provider round trip: Basic authentication from resolved
// settings, request body encoded by type (url.Values as a form, anything
// else as JSON), non-2xx surfaced as ProviderError with the verbatim body,
// 2xx parsed through the data envelope into out. No retry anywhere.
func (p *Payments) call(ctx context.Context, settings *EffectiveSettings, operation string, method string, path string, body interface{}, out interface{}) error {
	posId, key, err := settings.AuthCredentials()
	if err != nil {
		return err
	}
	endpoint, err := settings.Endpoint(path)
	if err != nil {
		return err
	}

	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case url.Values:
		reader = bytes.NewReader([]byte(payload.Encode()))
		contentType = "application/x-www-form-urlencoded"
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", operation, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}
	credentials := fmt.Sprintf("%d:%s", posId, key)
	request.Header.Set("Authorization", "Basic "+dongle.Encode.FromString(credentials).ByBase64().ToString())

	response, err := p.httpClient.Do(request)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: request timeout or cancelled: %w", operation, ctx.Err())
		}
		return fmt.Errorf("%s: send request: %w", operation, err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			p.logger.Error("close response body", err)
		}
	}(response.Body)

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", operation, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &ProviderError{Operation: operation, Status: response.StatusCode, Body: string(responseBody)}
	}
	if out == nil {
		return nil
	}

	var envelope entity.Envelope
	if err = json.Unmarshal(responseBody, &envelope); err != nil {
		return &DeserializationError{Operation: operation, Err: err}
	}
	data := envelope.Data
	if len(data) == 0 {
		return &DeserializationError{Operation: operation, Err: fmt.Errorf("empty data field")}
	}
	if err = json.Unmarshal(data, out); err != nil {
		return &DeserializationError{Operation: operation, Err: err}
	}
	p.logger.Debug(fmt.Sprintf("%s: response code %d", operation, envelope.ResponseCode))
	return nil
}

func (p *Payments) trackRegistration(ctx context.Context, registration *entity.RegisterRequest, token string) {
	if p.database == nil {
		return
	}
	transaction := &entity.Transaction{
		SessionId:   registration.SessionId,
		Token:       token,
		MerchantId:  registration.MerchantId,
		PosId:       registration.PosId,
		Amount:      registration.Amount,
		Currency:    registration.Currency,
		Description: registration.Description,
		Email:       registration.Email,
		Status:      "registered",
		TimeCreated: time.Now(),
	}
	if err := p.database.SaveTransaction(ctx, transaction); err != nil {
		p.logger.Error("save transaction", err)
	}
}

func (p *Payments) trackRefunds(ctx context.Context, request *entity.RefundRequest, results []entity.RefundResult) {
	if p.database == nil {
		return
	}
	for _, item := range request.Refunds {
		refund := &entity.Refund{
			RequestId:   request.RequestId,
			RefundsUuid: request.RefundsUuid,
			OrderId:     item.OrderId,
			SessionId:   item.SessionId,
			Amount:      item.Amount,
			Description: item.Description,
			TimeCreated: time.Now(),
		}
		for _, result := range results {
			if (item.OrderId > 0 && result.OrderId == item.OrderId) || (result.SessionId != "" && result.SessionId == item.SessionId) {
				refund.Accepted = result.Status
				refund.Message = result.Message
			}
		}
		if err := p.database.SaveRefund(ctx, refund); err != nil {
			p.logger.Error("save refund", err)
		}
	}
}

// registerForm renders a registration request as the form body expected by
// transaction/register. Optional fields are omitted when empty.
func registerForm(request *entity.RegisterRequest) url.Values {
	form := url.Values{}
	form.Set("merchantId", strconv.Itoa(request.MerchantId))
	form.Set("posId", strconv.Itoa(request.PosId))
	form.Set("sessionId", request.SessionId)
	form.Set("amount", strconv.Itoa(request.Amount))
	form.Set("currency", request.Currency)
	form.Set("description", request.Description)
	form.Set("email", request.Email)
	form.Set("country", request.Country)
	form.Set("language", request.Language)
	form.Set("urlReturn", request.UrlReturn)
	form.Set("sign", request.Sign)
	setOptional(form, "client", request.Client)
	setOptional(form, "address", request.Address)
	setOptional(form, "zip", request.Zip)
	setOptional(form, "city", request.City)
	setOptional(form, "phone", request.Phone)
	setOptional(form, "urlStatus", request.UrlStatus)
	setOptional(form, "transferLabel", request.TransferLabel)
	if request.Method > 0 {
		form.Set("method", strconv.Itoa(request.Method))
	}
	if request.TimeLimit > 0 {
		form.Set("timeLimit", strconv.Itoa(request.TimeLimit))
	}
	if request.Channel > 0 {
		form.Set("channel", strconv.Itoa(request.Channel))
	}
	if request.WaitForResult {
		form.Set("waitForResult", "true")
	}
	if request.RegulationAccept {
		form.Set("regulationAccept", "true")
	}
	return form
}

func setOptional(form url.Values, key string, value string) {
	if value != "" {
		form.Set(key, value)
	}
}

func masked(some string) string {
	if len(some) > 5 {
		return fmt.Sprintf("%s***", some[0:5])
	}
	if some == "" {
		return "?"
	}
	return "***"
}
