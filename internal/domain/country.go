package domain

// CountryCode is a dialing code offered by the form's picker.
type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

const DefaultCountryCode = "+61"

// CountryCodes is the fixed picker list. The server does not enforce it.
var CountryCodes = []CountryCode{
	{Code: "+61", Country: "AU", Flag: "🇦🇺"},
	{Code: "+92", Country: "PK", Flag: "🇵🇰"},
	{Code: "+1", Country: "US", Flag: "🇺🇸"},
	{Code: "+44", Country: "UK", Flag: "🇬🇧"},
	{Code: "+91", Country: "IN", Flag: "🇮🇳"},
}

// LookupCountryCode reports whether code is one of CountryCodes.
func LookupCountryCode(code string) (CountryCode, bool) {
	for _, cc := range CountryCodes {
		if cc.Code == code {
			return cc, true
		}
	}
	return CountryCode{}, false
}
