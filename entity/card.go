package entity

// CardInfo is the stored card description returned by card/info.
type CardInfo struct {
	OrderId        int    `json:"orderId"`
	CardType       string `json:"cardType"`
	Bin            string `json:"bin"`
	MaskedCCNumber string `json:"maskedCCNumber"`
	CardCountry    string `json:"cardCountry"`
	RefId          string `json:"refId"`
	HasSecure      bool   `json:"hasSecure"`
}

// CardChargeRequest charges a registered transaction with card data through
// card/charge or card/chargeWith3ds. Token is the registration token the
// customer's card data was attached to.
type CardChargeRequest struct {
	Token string `json:"token"`
}

// CardChargeResponse carries the provider order number of the charge. For
// 3DS charges RedirectUrl points to the issuer authentication page.
type CardChargeResponse struct {
	OrderId     int    `json:"orderId"`
	RedirectUrl string `json:"redirectUrl,omitempty"`
}

// CardPayRequest sends raw card data to card/pay for direct processing.
type CardPayRequest struct {
	TransactionToken string `json:"transactionToken"`
	CardNumber       string `json:"cardNumber"`
	CardDate         string `json:"cardDate"`
	Cvv              string `json:"cvv"`
	ClientName       string `json:"clientName,omitempty"`
}
