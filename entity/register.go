package entity

// RegisterRequest represents a transaction registration sent to
// transaction/register. Amount is always an integer in the currency minor
// unit (grosze for PLN); the signature is computed over its decimal string
// form, so floating point amounts are never accepted anywhere in the service.
type RegisterRequest struct {
	MerchantId int `json:"merchantId"`
	PosId      int `json:"posId"`
	// SessionId correlates the registration with later verification and
	// status lookups. Left empty, a unique one is generated before signing.
	SessionId        string `json:"sessionId"`
	Amount           int    `json:"amount"`
	Currency         string `json:"currency"`
	Description      string `json:"description"`
	Email            string `json:"email"`
	Client           string `json:"client,omitempty"`
	Address          string `json:"address,omitempty"`
	Zip              string `json:"zip,omitempty"`
	City             string `json:"city,omitempty"`
	Country          string `json:"country"`
	Phone            string `json:"phone,omitempty"`
	Language         string `json:"language"`
	Method           int    `json:"method,omitempty"`
	UrlReturn        string `json:"urlReturn"`
	UrlStatus        string `json:"urlStatus,omitempty"`
	TimeLimit        int    `json:"timeLimit,omitempty"`
	Channel          int    `json:"channel,omitempty"`
	WaitForResult    bool   `json:"waitForResult,omitempty"`
	RegulationAccept bool   `json:"regulationAccept,omitempty"`
	TransferLabel    string `json:"transferLabel,omitempty"`
	Sign             string `json:"sign"`
}

// RegisterResponse carries the provider token used to redirect the customer
// to the payment page.
type RegisterResponse struct {
	Token string `json:"token"`
}
