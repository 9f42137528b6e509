package internal

// Statement is a single account operation. Amount is in the account
// currency, OperationAmount in the currency of the original transaction.
type Statement struct {
	ID              string       `json:"id"`
	Time            UnixTime     `json:"time"`
	Description     string       `json:"description"`
	MCC             int          `json:"mcc"`
	OriginalMCC     *int         `json:"originalMcc,omitempty"`
	Hold            bool         `json:"hold"`
	Amount          Amount       `json:"amount"`
	OperationAmount Amount       `json:"operationAmount"`
	CurrencyCode    CurrencyCode `json:"currencyCode"`
	CommissionRate  Amount       `json:"commissionRate"`
	CashbackAmount  *Amount      `json:"cashbackAmount,omitempty"`
	Balance         Amount       `json:"balance"`
	Comment         *string      `json:"comment,omitempty"`
	ReceiptID       *string      `json:"receiptId,omitempty"`
	CounterEdrpou   *string      `json:"counterEdrpou,omitempty"`
	CounterIban     *string      `json:"counterIban,omitempty"`
}
