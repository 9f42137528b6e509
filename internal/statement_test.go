package internal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mono-statements/internal"
)

func TestStatement_JSONRoundTrip_Full(t *testing.T) {
	originalMCC := 5411
	cashback := internal.Amount(25)
	comment := "lunch"
	receipt := "XXXX-1234"
	edrpou := "3096889974"
	iban := "UA898999980000355639201001404"

	in := internal.Statement{
		ID:              "ZuHWzqkKGVo=",
		Time:            internal.NewUnixTime(1554466347),
		Description:     "Grocery",
		MCC:             5499,
		OriginalMCC:     &originalMCC,
		Hold:            true,
		Amount:          -95000,
		OperationAmount: -2500,
		CurrencyCode:    internal.USD,
		CommissionRate:  0,
		CashbackAmount:  &cashback,
		Balance:         10050000,
		Comment:         &comment,
		ReceiptID:       &receipt,
		CounterEdrpou:   &edrpou,
		CounterIban:     &iban,
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"time":1554466347`)
	assert.Contains(t, string(raw), `"currencyCode":840`)

	var out internal.Statement
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestStatement_JSONRoundTrip_Minimal(t *testing.T) {
	in := internal.Statement{ID: "m", CurrencyCode: internal.UAH}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"time":null`)
	assert.NotContains(t, string(raw), "cashbackAmount")
	assert.NotContains(t, string(raw), "comment")

	var out internal.Statement
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
	assert.True(t, out.Time.IsZero())
	assert.Nil(t, out.CashbackAmount)
	assert.Nil(t, out.OriginalMCC)
}
