package entity

import "time"

// Transaction is the locally tracked registration record. It is written when
// a transaction is registered with the provider and updated when the payment
// is verified or its status is fetched.
type Transaction struct {
	SessionId    string    `json:"session_id" bson:"session_id"`
	Token        string    `json:"token" bson:"token"`
	OrderId      int       `json:"order_id" bson:"order_id"`
	MerchantId   int       `json:"merchant_id" bson:"merchant_id"`
	PosId        int       `json:"pos_id" bson:"pos_id"`
	Amount       int       `json:"amount" bson:"amount"`
	Currency     string    `json:"currency" bson:"currency"`
	Description  string    `json:"description" bson:"description"`
	Email        string    `json:"email" bson:"email"`
	Status       string    `json:"status" bson:"status"`
	TimeCreated  time.Time `json:"time_created" bson:"time_created"`
	TimeVerified time.Time `json:"time_verified,omitempty" bson:"time_verified"`
}

// TransactionInfo is the provider view of a transaction returned by
// transaction/by/sessionId. Status values: 0 no payment, 1 advance payment,
// 2 payment made, 3 payment returned.
type TransactionInfo struct {
	Statement         string `json:"statement"`
	OrderId           int    `json:"orderId"`
	SessionId         string `json:"sessionId"`
	Status            int    `json:"status"`
	Amount            int    `json:"amount"`
	Currency          string `json:"currency"`
	Date              string `json:"date"`
	DateOfTransaction string `json:"dateOfTransaction"`
	ClientEmail       string `json:"clientEmail"`
	ClientName        string `json:"clientName"`
	ClientAddress     string `json:"clientAddress"`
	ClientCity        string `json:"clientCity"`
	ClientPostcode    string `json:"clientPostcode"`
	BatchId           int    `json:"batchId"`
	FeeAmount         int    `json:"fee"`
	PaymentMethod     int    `json:"paymentMethod"`
	Description       string `json:"description"`
	AccountMD5        string `json:"accountMD5"`
}
