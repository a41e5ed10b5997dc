package entity

// VerifyRequest confirms a completed payment with transaction/verify.
// OrderId is the provider-side transaction number received in the payment
// notification.
type VerifyRequest struct {
	MerchantId int    `json:"merchantId"`
	PosId      int    `json:"posId"`
	SessionId  string `json:"sessionId"`
	Amount     int    `json:"amount"`
	Currency   string `json:"currency"`
	OrderId    int    `json:"orderId"`
	Sign       string `json:"sign"`
}

type VerifyResponse struct {
	Status string `json:"status"`
}
