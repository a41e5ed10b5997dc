package services

import (
	"context"
	"przelewy/entity"
)

type Database interface {
	WriteLogMessage(data Data) error

	SaveTransaction(ctx context.Context, transaction *entity.Transaction) error
	GetTransaction(ctx context.Context, sessionId string) (*entity.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, sessionId string, status string, orderId int) error

	SaveRefund(ctx context.Context, refund *entity.Refund) error
	GetRefundsByOrder(ctx context.Context, orderId int) ([]entity.Refund, error)
}

type Data interface {
	DataType() string
}
