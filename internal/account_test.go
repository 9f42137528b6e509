package internal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mono-statements/internal"
)

func TestUserInfo_Decode(t *testing.T) {
	var info internal.UserInfo
	err := json.Unmarshal([]byte(`{
  "clientId":"c1","name":"Test","webHookUrl":"",
  "accounts":[
    {"id":"a1","balance":100,"creditLimit":5000,"type":"platinum","currencyCode":980,"cashbackType":"UAH"},
    {"id":"a2","balance":-20,"creditLimit":0,"type":"fop","currencyCode":840,"cashbackType":""}
  ]}`), &info)

	require.NoError(t, err)
	require.Len(t, info.Accounts, 2)
	assert.Equal(t, internal.Amount(5000), info.Accounts[0].CreditLimit)
	assert.Equal(t, "Platinum UAH", info.Accounts[0].Label())
	assert.Equal(t, "FOP USD", info.Accounts[1].Label())

	acc, ok := info.Account("a2")
	require.True(t, ok)
	assert.Equal(t, internal.Amount(-20), acc.Balance)

	_, ok = info.Account("missing")
	assert.False(t, ok)
}

func TestAccount_DecodeRejectsUnknownEnums(t *testing.T) {
	var acc internal.Account

	err := json.Unmarshal([]byte(`{"id":"a","type":"gold","currencyCode":980,"cashbackType":""}`), &acc)
	assert.ErrorContains(t, err, "unsupported account type")

	err = json.Unmarshal([]byte(`{"id":"a","type":"iron","currencyCode":980,"cashbackType":"Points"}`), &acc)
	assert.ErrorContains(t, err, "unsupported cashback type")
}

func TestAccountType_Label(t *testing.T) {
	assert.Equal(t, "eAid", internal.AccountEAid.Label())
	assert.Equal(t, "Yellow", internal.AccountYellow.Label())
	assert.Equal(t, "Iron", internal.AccountIron.Label())
}

func TestStatement_DecodeWithoutOptionalFields(t *testing.T) {
	var st internal.Statement
	err := json.Unmarshal([]byte(`{"id":"s1","time":1554466347,"description":"Покупка","mcc":7997,
  "hold":false,"amount":-95000,"operationAmount":-95000,"currencyCode":980,"commissionRate":0,"balance":10050000}`), &st)

	require.NoError(t, err)
	assert.Equal(t, int64(1554466347), st.Time.Unix())
	assert.Equal(t, internal.UAH, st.CurrencyCode)
	assert.Nil(t, st.OriginalMCC)
	assert.Nil(t, st.Comment)
	assert.Nil(t, st.ReceiptID)
	assert.Nil(t, st.CounterEdrpou)
	assert.Nil(t, st.CounterIban)
	assert.Nil(t, st.CashbackAmount)
}

func TestUnixTime_RoundTrip(t *testing.T) {
	ts := internal.NewUnixTime(1700000000)

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", string(b))

	var back internal.UnixTime
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, ts.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"2024-01-01"`), &back))
}
