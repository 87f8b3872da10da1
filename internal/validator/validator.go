// Package validator provides custom validation functions for Gin's binding
// engine.
package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// monthKeyRegex matches a YYYY-MM month bucket with a real month number.
var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// iso4217Codes lists the ISO 4217 currency codes accepted for export.
var iso4217Codes = buildCodeSet(
	"AED AFN ALL AMD ANG AOA ARS AUD AWG AZN BAM BBD BDT BGN BHD BIF BMD BND",
	"BOB BRL BSD BTN BWP BYN BZD CAD CDF CHF CLP CNY COP CRC CUP CVE CZK DJF",
	"DKK DOP DZD EGP ERN ETB EUR FJD FKP GBP GEL GHS GIP GMD GNF GTQ GYD HKD",
	"HNL HTG HUF IDR ILS INR IQD IRR ISK JMD JOD JPY KES KGS KHR KMF KPW KRW",
	"KWD KYD KZT LAK LBP LKR LRD LSL LYD MAD MDL MGA MKD MMK MNT MOP MRU MUR",
	"MVR MWK MXN MYR MZN NAD NGN NIO NOK NPR NZD OMR PAB PEN PGK PHP PKR PLN",
	"PYG QAR RON RSD RUB RWF SAR SBD SCR SDG SEK SGD SHP SLE SOS SRD SSP STN",
	"SVC SYP SZL THB TJS TMT TND TOP TRY TTD TWD TZS UAH UGX USD UYU UZS VES",
	"VND VUV WST XAF XCD XOF XPF YER ZAR ZMW ZWL",
)

func buildCodeSet(groups ...string) map[string]bool {
	set := make(map[string]bool)
	for _, g := range groups {
		for _, code := range strings.Fields(g) {
			set[code] = true
		}
	}
	return set
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("priority", validatePriority)
		_ = v.RegisterValidation("sort_key", validateSortKey)
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("iso4217", validateISO4217)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validatePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}

func validateSortKey(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date-desc", "date-asc", "amount-desc", "amount-asc", "priority-desc":
		return true
	}
	return false
}

// validateMonthKey accepts a YYYY-MM bucket or the literal "all".
func validateMonthKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "all" || monthKeyRegex.MatchString(s)
}

func validateISO4217(fl validator.FieldLevel) bool {
	return iso4217Codes[fl.Field().String()]
}
