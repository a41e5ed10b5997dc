package services

import (
	"context"
	"przelewy/entity"
)

// Payments is the caller-facing operation surface of the Przelewy24 client,
// one method per provider endpoint. Implementations resolve effective
// credentials per call and never retry failed requests: registration-like
// operations are not safely retryable without a fresh session id, so retry
// policy stays with the caller.
type Payments interface {
	RegisterTransaction(ctx context.Context, request *entity.RegisterRequest) (*entity.RegisterResponse, error)
	VerifyTransaction(ctx context.Context, request *entity.VerifyRequest) (*entity.VerifyResponse, error)
	TransactionBySession(ctx context.Context, sessionId string) (*entity.TransactionInfo, error)

	RefundTransaction(ctx context.Context, request *entity.RefundRequest) ([]entity.RefundResult, error)
	RefundsByOrder(ctx context.Context, orderId int) ([]entity.RefundInfo, error)

	PaymentMethods(ctx context.Context, lang string, amount int, currency string) ([]entity.PaymentMethod, error)

	CardInfo(ctx context.Context, orderId int) (*entity.CardInfo, error)
	ChargeCardWith3ds(ctx context.Context, request *entity.CardChargeRequest) (*entity.CardChargeResponse, error)
	ChargeCard(ctx context.Context, request *entity.CardChargeRequest) (*entity.CardChargeResponse, error)
	PayCard(ctx context.Context, request *entity.CardPayRequest) (*entity.CardChargeResponse, error)

	ChargeBlikByCode(ctx context.Context, request *entity.BlikChargeByCode) (*entity.BlikChargeResponse, error)
	ChargeBlikByAlias(ctx context.Context, request *entity.BlikChargeByAlias) (*entity.BlikChargeResponse, error)
	BlikAliasesByEmail(ctx context.Context, email string, custom bool) ([]entity.BlikAlias, error)

	ReportHistory(ctx context.Context, filter *entity.ReportFilter) ([]entity.ReportEntry, error)
	BatchDetails(ctx context.Context, batchId int) (*entity.BatchDetails, error)
}
