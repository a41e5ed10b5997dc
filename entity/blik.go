package entity

// BlikChargeByCode charges a registered transaction with a six digit BLIK
// code through paymentMethod/blik/chargeByCode.
type BlikChargeByCode struct {
	Token         string `json:"token"`
	BlikCode      string `json:"blikCode"`
	AliasRegister bool   `json:"aliasRegister,omitempty"`
	AliasLabel    string `json:"aliasLabel,omitempty"`
}

// BlikChargeByAlias charges a registered transaction with a previously
// stored BLIK alias through paymentMethod/blik/chargeByAlias.
type BlikChargeByAlias struct {
	Token      string `json:"token"`
	AliasValue string `json:"aliasValue"`
	AliasLabel string `json:"aliasLabel,omitempty"`
}

type BlikChargeResponse struct {
	OrderId int    `json:"orderId"`
	Message string `json:"message,omitempty"`
}

// BlikAlias describes a stored BLIK alias bound to a customer email.
type BlikAlias struct {
	AliasValue     string `json:"aliasValue"`
	AliasLabel     string `json:"aliasLabel"`
	AliasType      string `json:"type"`
	Status         string `json:"status"`
	Email          string `json:"email"`
	ExpirationDate string `json:"expirationDate"`
}
