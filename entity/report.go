package entity

// ReportFilter narrows report/history output. Dates use the YYYY-MM-DD
// format expected by the provider; Type is "sale", "refund" or empty for
// both.
type ReportFilter struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Type     string `json:"type,omitempty"`
}

// ReportEntry is one settlement history row.
type ReportEntry struct {
	BatchId   int    `json:"batchId"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Amount    int    `json:"amount"`
	Fee       int    `json:"fee"`
	Currency  string `json:"currency"`
	Entries   int    `json:"entries"`
	Iban      string `json:"iban"`
	IbanOwner string `json:"ibanOwner"`
}

// BatchDetails lists the transactions and refunds settled together in one
// transfer to the merchant account.
type BatchDetails struct {
	BatchId      int               `json:"batchId"`
	Date         string            `json:"date"`
	Amount       int               `json:"amount"`
	Fee          int               `json:"fee"`
	Currency     string            `json:"currency"`
	Transactions []TransactionInfo `json:"transactions"`
	Refunds      []RefundInfo      `json:"refunds"`
}
