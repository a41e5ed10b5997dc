package entity

import "time"

// RefundRequest asks the provider to return money for one or more completed
// transactions with transaction/refund. RequestId identifies the request
// itself, RefundsUuid the refund group; both must be unique per attempt.
type RefundRequest struct {
	RequestId   string       `json:"requestId"`
	RefundsUuid string       `json:"refundsUuid"`
	UrlStatus   string       `json:"urlStatus,omitempty"`
	Refunds     []RefundItem `json:"refunds"`
}

type RefundItem struct {
	OrderId     int    `json:"orderId"`
	SessionId   string `json:"sessionId"`
	Amount      int    `json:"amount"`
	Description string `json:"description,omitempty"`
}

// RefundResult is the per-item outcome reported by the provider.
type RefundResult struct {
	OrderId   int    `json:"orderId"`
	SessionId string `json:"sessionId"`
	Amount    int    `json:"amount"`
	Status    bool   `json:"status"`
	Message   string `json:"message,omitempty"`
}

// RefundInfo is a single refund entry returned by refund/by/orderId.
type RefundInfo struct {
	BatchId       int    `json:"batchId"`
	RequestId     string `json:"requestId"`
	Date          string `json:"date"`
	Login         string `json:"login"`
	Description   string `json:"description"`
	Status        int    `json:"status"`
	Amount        int    `json:"amount"`
	SessionId     string `json:"sessionId"`
	OrderId       int    `json:"orderId"`
	RefundsUuid   string `json:"refundsUuid"`
	RefundPayment int    `json:"refundPayment"`
}

// Refund is the locally tracked refund record.
type Refund struct {
	RequestId   string    `json:"request_id" bson:"request_id"`
	RefundsUuid string    `json:"refunds_uuid" bson:"refunds_uuid"`
	OrderId     int       `json:"order_id" bson:"order_id"`
	SessionId   string    `json:"session_id" bson:"session_id"`
	Amount      int       `json:"amount" bson:"amount"`
	Description string    `json:"description" bson:"description"`
	Accepted    bool      `json:"accepted" bson:"accepted"`
	Message     string    `json:"message" bson:"message"`
	TimeCreated time.Time `json:"time_created" bson:"time_created"`
}
