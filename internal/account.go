package internal

import (
	"bytes"
	"fmt"
	"strings"
)

type AccountType string

const (
	AccountBlack    AccountType = "black"
	AccountWhite    AccountType = "white"
	AccountPlatinum AccountType = "platinum"
	AccountIron     AccountType = "iron"
	AccountFOP      AccountType = "fop"
	AccountYellow   AccountType = "yellow"
	AccountEAid     AccountType = "eAid"
)

var accountTypeLabels = map[AccountType]string{
	AccountBlack:    "Black",
	AccountWhite:    "White",
	AccountPlatinum: "Platinum",
	AccountIron:     "Iron",
	AccountFOP:      "FOP",
	AccountYellow:   "Yellow",
	AccountEAid:     "eAid",
}

func (t AccountType) IsSupported() bool {
	_, ok := accountTypeLabels[t]
	return ok
}

// Label is the human readable name of the card type.
func (t AccountType) Label() string {
	if l, ok := accountTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t *AccountType) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), "\"")
	at := AccountType(s)
	if !at.IsSupported() {
		return fmt.Errorf("unsupported account type %q", s)
	}
	*t = at
	return nil
}

type CashbackType string

const (
	CashbackNone  CashbackType = ""
	CashbackUAH   CashbackType = "UAH"
	CashbackMiles CashbackType = "Miles"
)

func (c *CashbackType) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), "\"")
	switch ct := CashbackType(s); ct {
	case CashbackNone, CashbackUAH, CashbackMiles:
		*c = ct
		return nil
	default:
		return fmt.Errorf("unsupported cashback type %q", s)
	}
}

type Account struct {
	ID           string       `json:"id"`
	Balance      Amount       `json:"balance"`
	CreditLimit  Amount       `json:"creditLimit"`
	Type         AccountType  `json:"type"`
	CurrencyCode CurrencyCode `json:"currencyCode"`
	CashbackType CashbackType `json:"cashbackType"`
}

// Label renders the account the way it is shown in tabs, e.g. "Black UAH".
func (a Account) Label() string {
	return fmt.Sprintf("%s %s", a.Type.Label(), a.CurrencyCode)
}

type UserInfo struct {
	ClientID   string    `json:"clientId"`
	Name       string    `json:"name"`
	WebHookURL string    `json:"webHookUrl"`
	Accounts   []Account `json:"accounts"`
}

// Account looks an account up by id.
func (u *UserInfo) Account(id string) (Account, bool) {
	for _, a := range u.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}
