package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"przelewy/config"
	"przelewy/entity"
	"przelewy/services"
)

const (
	registerTransaction = "/transaction/register"
	verifyTransaction   = "/transaction/verify"
	transactionStatus   = "/transaction/:session_id"
	refundTransaction   = "/refund"
	refundsByOrder      = "/refund/order/:order_id"
	paymentMethods      = "/payment/methods/:lang"
	cardInfo            = "/card/:order_id"
	cardCharge          = "/card/charge"
	cardCharge3ds       = "/card/charge3ds"
	cardPay             = "/card/pay"
	blikChargeCode      = "/blik/code"
	blikChargeAlias     = "/blik/alias"
	blikAliases         = "/blik/aliases/:email"
	reportHistory       = "/report/history"
	batchDetails        = "/report/batch/:batch_id"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	payments   services.Payments
	logger     services.LogHandler
}

func NewServer(conf *config.Config) *Server {

	server := Server{
		conf: conf,
	}

	// register itself as a router for httpServer handler
	router := httprouter.New()
	server.Register(router)
	server.httpServer = &http.Server{
		Handler: router,
	}

	return &server
}

func (s *Server) Register(router *httprouter.Router) {
	router.POST(registerTransaction, s.registerTransaction)
	router.PUT(verifyTransaction, s.verifyTransaction)
	router.GET(transactionStatus, s.transactionBySession)
	router.POST(refundTransaction, s.refundTransaction)
	router.GET(refundsByOrder, s.refundsByOrder)
	router.GET(paymentMethods, s.paymentMethods)
	router.GET(cardInfo, s.cardInfo)
	router.POST(cardCharge, s.chargeCard)
	router.POST(cardCharge3ds, s.chargeCard3ds)
	router.POST(cardPay, s.payCard)
	router.POST(blikChargeCode, s.chargeBlikByCode)
	router.POST(blikChargeAlias, s.chargeBlikByAlias)
	router.GET(blikAliases, s.blikAliases)
	router.GET(reportHistory, s.reportHistory)
	router.GET(batchDetails, s.batchDetails)
}

func (s *Server) SetPaymentsService(payments services.Payments) {
	s.payments = payments
}

func (s *Server) SetLogger(logger services.LogHandler) {
	s.logger = logger
}

func (s *Server) Start() error {
	if s.conf == nil {
		return fmt.Errorf("configuration not loaded")
	}

	serverAddress := fmt.Sprintf("%s:%s", s.conf.Listen.BindIP, s.conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	if s.conf.Listen.TLS {
		s.logger.Info(fmt.Sprintf("starting https TLS on %s", serverAddress))
		err = s.httpServer.ServeTLS(listener, s.conf.Listen.CertFile, s.conf.Listen.KeyFile)
	} else {
		s.logger.Info(fmt.Sprintf("starting http on %s", serverAddress))
		err = s.httpServer.Serve(listener)
	}

	return err
}

func (s *Server) registerTransaction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] register: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.RegisterTransaction(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "register transaction", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) verifyTransaction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] verify: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.VerifyTransaction(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "verify transaction", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) transactionBySession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	result, err := s.payments.TransactionBySession(ctx, ps.ByName("session_id"))
	if err != nil {
		s.writeError(w, reqID, "transaction by session", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) refundTransaction(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] refund: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	results, err := s.payments.RefundTransaction(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "refund transaction", err)
		return
	}
	s.writeJSON(w, reqID, results)
}

func (s *Server) refundsByOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	orderId, err := strconv.Atoi(ps.ByName("order_id"))
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] invalid order id: %s; %v", reqID, ps.ByName("order_id"), err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	results, err := s.payments.RefundsByOrder(ctx, orderId)
	if err != nil {
		s.writeError(w, reqID, "refunds by order", err)
		return
	}
	s.writeJSON(w, reqID, results)
}

func (s *Server) paymentMethods(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	query := r.URL.Query()
	amount, _ := strconv.Atoi(query.Get("amount"))

	results, err := s.payments.PaymentMethods(ctx, ps.ByName("lang"), amount, query.Get("currency"))
	if err != nil {
		s.writeError(w, reqID, "payment methods", err)
		return
	}
	s.writeJSON(w, reqID, results)
}

func (s *Server) cardInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	orderId, err := strconv.Atoi(ps.ByName("order_id"))
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] invalid order id: %s; %v", reqID, ps.ByName("order_id"), err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.CardInfo(ctx, orderId)
	if err != nil {
		s.writeError(w, reqID, "card info", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) chargeCard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.chargeCardRequest(w, r, false)
}

func (s *Server) chargeCard3ds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.chargeCardRequest(w, r, true)
}

func (s *Server) chargeCardRequest(w http.ResponseWriter, r *http.Request, secure bool) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.CardChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] card charge: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var result *entity.CardChargeResponse
	var err error
	if secure {
		result, err = s.payments.ChargeCardWith3ds(ctx, &request)
	} else {
		result, err = s.payments.ChargeCard(ctx, &request)
	}
	if err != nil {
		s.writeError(w, reqID, "card charge", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) payCard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.CardPayRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] card pay: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.PayCard(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "card pay", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) chargeBlikByCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.BlikChargeByCode
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] blik charge: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.ChargeBlikByCode(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "blik charge by code", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) chargeBlikByAlias(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	var request entity.BlikChargeByAlias
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] blik charge: decode request body: %v", reqID, err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.ChargeBlikByAlias(ctx, &request)
	if err != nil {
		s.writeError(w, reqID, "blik charge by alias", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) blikAliases(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	custom := r.URL.Query().Get("custom") == "true"
	results, err := s.payments.BlikAliasesByEmail(ctx, ps.ByName("email"), custom)
	if err != nil {
		s.writeError(w, reqID, "blik aliases", err)
		return
	}
	s.writeJSON(w, reqID, results)
}

func (s *Server) reportHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	query := r.URL.Query()
	filter := entity.ReportFilter{
		DateFrom: query.Get("dateFrom"),
		DateTo:   query.Get("dateTo"),
		Type:     query.Get("type"),
	}

	results, err := s.payments.ReportHistory(ctx, &filter)
	if err != nil {
		s.writeError(w, reqID, "report history", err)
		return
	}
	s.writeJSON(w, reqID, results)
}

func (s *Server) batchDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := WithRequestID(r.Context())
	reqID := GetRequestID(ctx)

	batchId, err := strconv.Atoi(ps.ByName("batch_id"))
	if err != nil {
		s.logger.Warn(fmt.Sprintf("[%s] invalid batch id: %s; %v", reqID, ps.ByName("batch_id"), err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := s.payments.BatchDetails(ctx, batchId)
	if err != nil {
		s.writeError(w, reqID, "batch details", err)
		return
	}
	s.writeJSON(w, reqID, result)
}

func (s *Server) writeJSON(w http.ResponseWriter, reqID string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error(fmt.Sprintf("[%s] encode response", reqID), err)
	}
}

// writeError maps client error types onto HTTP statuses: caller mistakes to
// 400, missing credentials to 503, provider failures to 502. The response
// body repeats the error text so callers can diagnose without server access.
func (s *Server) writeError(w http.ResponseWriter, reqID string, operation string, err error) {
	status := http.StatusInternalServerError

	var validationErr *ValidationError
	var configurationErr *ConfigurationError
	var providerErr *ProviderError
	var deserializationErr *DeserializationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &configurationErr):
		status = http.StatusServiceUnavailable
	case errors.As(err, &providerErr):
		status = http.StatusBadGateway
	case errors.As(err, &deserializationErr):
		status = http.StatusBadGateway
	}

	s.logger.Error(fmt.Sprintf("[%s] %s", reqID, operation), err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
