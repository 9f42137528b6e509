package internal

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// CurrencyCode is an ISO 4217 numeric currency code. Only codes listed in
// currencyNames are accepted from the wire.
type CurrencyCode int

const (
	AUD CurrencyCode = 36
	EUR CurrencyCode = 978
	AZN CurrencyCode = 944
	ALL CurrencyCode = 8
	DZD CurrencyCode = 12
	AOA CurrencyCode = 973
	XCD CurrencyCode = 951
	ARS CurrencyCode = 32
	AWG CurrencyCode = 533
	AFN CurrencyCode = 971
	BSD CurrencyCode = 44
	BDT CurrencyCode = 50
	BBD CurrencyCode = 52
	BHD CurrencyCode = 48
	BZD CurrencyCode = 84
	XOF CurrencyCode = 952
	BMD CurrencyCode = 60
	BYN CurrencyCode = 933
	BGN CurrencyCode = 975
	BOB CurrencyCode = 68
	BOV CurrencyCode = 984
	USD CurrencyCode = 840
	BAM CurrencyCode = 977
	BWP CurrencyCode = 72
	BRL CurrencyCode = 986
	GBP CurrencyCode = 826
	BND CurrencyCode = 96
	BIF CurrencyCode = 108
	INR CurrencyCode = 356
	BTN CurrencyCode = 64
	VUV CurrencyCode = 548
	VEF CurrencyCode = 937
	VND CurrencyCode = 704
	AMD CurrencyCode = 51
	XAF CurrencyCode = 950
	HTG CurrencyCode = 332
	GYD CurrencyCode = 328
	GMD CurrencyCode = 270
	GHS CurrencyCode = 936
	GNF CurrencyCode = 324
	HNL CurrencyCode = 340
	HKD CurrencyCode = 344
	GEL CurrencyCode = 981
	GTQ CurrencyCode = 320
	GIP CurrencyCode = 292
	DKK CurrencyCode = 208
	DJF CurrencyCode = 262
	DOP CurrencyCode = 214
	ERN CurrencyCode = 232
	ETB CurrencyCode = 230
	EGP CurrencyCode = 818
	XSU CurrencyCode = 994
	YER CurrencyCode = 886
	ZMW CurrencyCode = 967
	MAD CurrencyCode = 504
	ZWL CurrencyCode = 932
	ILS CurrencyCode = 376
	IDR CurrencyCode = 360
	IQD CurrencyCode = 368
	IRR CurrencyCode = 364
	ISK CurrencyCode = 352
	JOD CurrencyCode = 400
	CVE CurrencyCode = 132
	KZT CurrencyCode = 398
	KYD CurrencyCode = 136
	KHR CurrencyCode = 116
	CAD CurrencyCode = 124
	QAR CurrencyCode = 634
	KES CurrencyCode = 404
	KGS CurrencyCode = 417
	CNY CurrencyCode = 156
	COP CurrencyCode = 170
	COU CurrencyCode = 970
	KMF CurrencyCode = 174
	CDF CurrencyCode = 976
	KPW CurrencyCode = 408
	KRW CurrencyCode = 410
	CRC CurrencyCode = 188
	XUA CurrencyCode = 965
	CUP CurrencyCode = 192
	CUC CurrencyCode = 931
	KWD CurrencyCode = 414
	ANG CurrencyCode = 532
	LAK CurrencyCode = 418
	LSL CurrencyCode = 426
	ZAR CurrencyCode = 710
	LRD CurrencyCode = 430
	LBP CurrencyCode = 422
	LYD CurrencyCode = 434
	CHF CurrencyCode = 756
	MRO CurrencyCode = 478
	MUR CurrencyCode = 480
	MGA CurrencyCode = 969
	MOP CurrencyCode = 446
	MKD CurrencyCode = 807
	MWK CurrencyCode = 454
	MYR CurrencyCode = 458
	MVR CurrencyCode = 462
	MXN CurrencyCode = 484
	MXV CurrencyCode = 979
	XDR CurrencyCode = 960
	MZN CurrencyCode = 943
	MDL CurrencyCode = 498
	MNT CurrencyCode = 496
	MMK CurrencyCode = 104
	NAD CurrencyCode = 516
	NPR CurrencyCode = 524
	NGN CurrencyCode = 566
	NIO CurrencyCode = 558
	NZD CurrencyCode = 554
	XPF CurrencyCode = 953
	NOK CurrencyCode = 578
	AED CurrencyCode = 784
	OMR CurrencyCode = 512
	SHP CurrencyCode = 654
	PKR CurrencyCode = 586
	PAB CurrencyCode = 590
	PGK CurrencyCode = 598
	PYG CurrencyCode = 600
	PEN CurrencyCode = 604
	SSP CurrencyCode = 728
	PLN CurrencyCode = 985
	RUB CurrencyCode = 643
	RWF CurrencyCode = 646
	RON CurrencyCode = 946
	SVC CurrencyCode = 222
	WST CurrencyCode = 882
	STD CurrencyCode = 678
	SAR CurrencyCode = 682
	SZL CurrencyCode = 748
	SCR CurrencyCode = 690
	RSD CurrencyCode = 941
	SYP CurrencyCode = 760
	SGD CurrencyCode = 702
	SBD CurrencyCode = 90
	SOS CurrencyCode = 706
	SDG CurrencyCode = 938
	SRD CurrencyCode = 968
	USN CurrencyCode = 997
	SLL CurrencyCode = 694
	TJS CurrencyCode = 972
	THB CurrencyCode = 764
	TWD CurrencyCode = 901
	TZS CurrencyCode = 834
	TOP CurrencyCode = 776
	TTD CurrencyCode = 780
	TND CurrencyCode = 788
	TRY CurrencyCode = 949
	TMT CurrencyCode = 795
	UGX CurrencyCode = 800
	HUF CurrencyCode = 348
	UZS CurrencyCode = 860
	UAH CurrencyCode = 980
	UYU CurrencyCode = 858
	UYI CurrencyCode = 940
	FJD CurrencyCode = 242
	PHP CurrencyCode = 608
	FKP CurrencyCode = 238
	HRK CurrencyCode = 191
	CZK CurrencyCode = 203
	CLP CurrencyCode = 152
	CLF CurrencyCode = 990
	CHE CurrencyCode = 947
	CHW CurrencyCode = 948
	SEK CurrencyCode = 752
	LKR CurrencyCode = 144
	JMD CurrencyCode = 388
	JPY CurrencyCode = 392
	XBA CurrencyCode = 955
	XBB CurrencyCode = 956
	XBC CurrencyCode = 957
	XBD CurrencyCode = 958
	XTS CurrencyCode = 963
	XXX CurrencyCode = 999
	XAU CurrencyCode = 959
	XPD CurrencyCode = 964
	XPT CurrencyCode = 962
	XAG CurrencyCode = 961
	ZMK CurrencyCode = 894
)

var currencyNames = map[CurrencyCode]string{
	AUD: "AUD",
	EUR: "EUR",
	AZN: "AZN",
	ALL: "ALL",
	DZD: "DZD",
	AOA: "AOA",
	XCD: "XCD",
	ARS: "ARS",
	AWG: "AWG",
	AFN: "AFN",
	BSD: "BSD",
	BDT: "BDT",
	BBD: "BBD",
	BHD: "BHD",
	BZD: "BZD",
	XOF: "XOF",
	BMD: "BMD",
	BYN: "BYN",
	BGN: "BGN",
	BOB: "BOB",
	BOV: "BOV",
	USD: "USD",
	BAM: "BAM",
	BWP: "BWP",
	BRL: "BRL",
	GBP: "GBP",
	BND: "BND",
	BIF: "BIF",
	INR: "INR",
	BTN: "BTN",
	VUV: "VUV",
	VEF: "VEF",
	VND: "VND",
	AMD: "AMD",
	XAF: "XAF",
	HTG: "HTG",
	GYD: "GYD",
	GMD: "GMD",
	GHS: "GHS",
	GNF: "GNF",
	HNL: "HNL",
	HKD: "HKD",
	GEL: "GEL",
	GTQ: "GTQ",
	GIP: "GIP",
	DKK: "DKK",
	DJF: "DJF",
	DOP: "DOP",
	ERN: "ERN",
	ETB: "ETB",
	EGP: "EGP",
	XSU: "XSU",
	YER: "YER",
	ZMW: "ZMW",
	MAD: "MAD",
	ZWL: "ZWL",
	ILS: "ILS",
	IDR: "IDR",
	IQD: "IQD",
	IRR: "IRR",
	ISK: "ISK",
	JOD: "JOD",
	CVE: "CVE",
	KZT: "KZT",
	KYD: "KYD",
	KHR: "KHR",
	CAD: "CAD",
	QAR: "QAR",
	KES: "KES",
	KGS: "KGS",
	CNY: "CNY",
	COP: "COP",
	COU: "COU",
	KMF: "KMF",
	CDF: "CDF",
	KPW: "KPW",
	KRW: "KRW",
	CRC: "CRC",
	XUA: "XUA",
	CUP: "CUP",
	CUC: "CUC",
	KWD: "KWD",
	ANG: "ANG",
	LAK: "LAK",
	LSL: "LSL",
	ZAR: "ZAR",
	LRD: "LRD",
	LBP: "LBP",
	LYD: "LYD",
	CHF: "CHF",
	MRO: "MRO",
	MUR: "MUR",
	MGA: "MGA",
	MOP: "MOP",
	MKD: "MKD",
	MWK: "MWK",
	MYR: "MYR",
	MVR: "MVR",
	MXN: "MXN",
	MXV: "MXV",
	XDR: "XDR",
	MZN: "MZN",
	MDL: "MDL",
	MNT: "MNT",
	MMK: "MMK",
	NAD: "NAD",
	NPR: "NPR",
	NGN: "NGN",
	NIO: "NIO",
	NZD: "NZD",
	XPF: "XPF",
	NOK: "NOK",
	AED: "AED",
	OMR: "OMR",
	SHP: "SHP",
	PKR: "PKR",
	PAB: "PAB",
	PGK: "PGK",
	PYG: "PYG",
	PEN: "PEN",
	SSP: "SSP",
	PLN: "PLN",
	RUB: "RUB",
	RWF: "RWF",
	RON: "RON",
	SVC: "SVC",
	WST: "WST",
	STD: "STD",
	SAR: "SAR",
	SZL: "SZL",
	SCR: "SCR",
	RSD: "RSD",
	SYP: "SYP",
	SGD: "SGD",
	SBD: "SBD",
	SOS: "SOS",
	SDG: "SDG",
	SRD: "SRD",
	USN: "USN",
	SLL: "SLL",
	TJS: "TJS",
	THB: "THB",
	TWD: "TWD",
	TZS: "TZS",
	TOP: "TOP",
	TTD: "TTD",
	TND: "TND",
	TRY: "TRY",
	TMT: "TMT",
	UGX: "UGX",
	HUF: "HUF",
	UZS: "UZS",
	UAH: "UAH",
	UYU: "UYU",
	UYI: "UYI",
	FJD: "FJD",
	PHP: "PHP",
	FKP: "FKP",
	HRK: "HRK",
	CZK: "CZK",
	CLP: "CLP",
	CLF: "CLF",
	CHE: "CHE",
	CHW: "CHW",
	SEK: "SEK",
	LKR: "LKR",
	JMD: "JMD",
	JPY: "JPY",
	XBA: "XBA",
	XBB: "XBB",
	XBC: "XBC",
	XBD: "XBD",
	XTS: "XTS",
	XXX: "XXX",
	XAU: "XAU",
	XPD: "XPD",
	XPT: "XPT",
	XAG: "XAG",
	ZMK: "ZMK",
}

var currencyByName = func() map[string]CurrencyCode {
	m := make(map[string]CurrencyCode, len(currencyNames))
	for code, name := range currencyNames {
		m[name] = code
	}
	return m
}()

// NewCurrencyCode accepts either an alphabetic ("USD") or a numeric ("840")
// code.
func NewCurrencyCode(s string) (CurrencyCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if ccy, ok := currencyByName[s]; ok {
		return ccy, nil
	}
	n, err := strconv.Atoi(s)
	if err == nil {
		ccy := CurrencyCode(n)
		if ccy.IsSupported() {
			return ccy, nil
		}
	}
	return 0, fmt.Errorf("unsupported currency %q", s)
}

func (c CurrencyCode) IsSupported() bool {
	_, ok := currencyNames[c]
	return ok
}

func (c CurrencyCode) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// MarshalJSON writes the numeric code, which is what the bank API speaks.
func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("currency code %s: %w", string(b), err)
	}
	ccy := CurrencyCode(n)
	if !ccy.IsSupported() {
		return fmt.Errorf("unsupported currency code %d", n)
	}
	*c = ccy
	return nil
}
