// Package entity defines data models for the Przelewy24 payment service.
package entity

// MerchantSettings holds site-level Przelewy24 credentials supplied by the
// calling application, for example per-shop values loaded from its own store.
// Every field is optional; empty fields fall back to process configuration
// and, when the sandbox fallback is enabled, to the built-in sandbox account.
type MerchantSettings struct {
	ClientId        int    `json:"clientId,omitempty" bson:"client_id"`
	MerchantId      int    `json:"merchantId,omitempty" bson:"merchant_id"`
	PosId           int    `json:"posId,omitempty" bson:"pos_id"`
	Crc             string `json:"crc,omitempty" bson:"crc"`
	ReportKey       string `json:"reportKey,omitempty" bson:"report_key"`
	SecretId        string `json:"secretId,omitempty" bson:"secret_id"`
	ApiUrl          string `json:"apiUrl,omitempty" bson:"api_url"`
	SandboxFallback string `json:"sandboxFallback,omitempty" bson:"sandbox_fallback"`
}
