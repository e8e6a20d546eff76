package shipping

import (
	"sort"
)

const (
	// Currency is what every shipping fee is charged in.
	Currency = "aud"
	// HomeCountry ships fastest.
	HomeCountry = "AU"
	// DefaultFee applies to serviceable countries without their own rate.
	// It is higher than any explicit rate.
	DefaultFee int64 = 6050
)

// Fees in minor units of Currency.
const (
	feeDomestic     int64 = 1005
	feeNewZealand   int64 = 2640
	feeAsia         int64 = 3815
	feeNorthAmerica int64 = 4220
	feeEurope       int64 = 4830
)

var rates = map[string]int64{
	"AU": feeDomestic,
	"NZ": feeNewZealand,

	"SG": feeAsia,
	"MY": feeAsia,
	"TH": feeAsia,
	"ID": feeAsia,
	"PH": feeAsia,
	"VN": feeAsia,
	"JP": feeAsia,
	"KR": feeAsia,
	"TW": feeAsia,
	"HK": feeAsia,

	"US": feeNorthAmerica,
	"CA": feeNorthAmerica,

	"GB": feeEurope,
	"DE": feeEurope,
	"FR": feeEurope,
	"IT": feeEurope,
	"ES": feeEurope,
	"NL": feeEurope,
	"BE": feeEurope,
	"AT": feeEurope,
	"IE": feeEurope,
	"PT": feeEurope,
	"SE": feeEurope,
	"DK": feeEurope,
	"FI": feeEurope,
	"NO": feeEurope,
	"CH": feeEurope,
	"PL": feeEurope,
}

var countryNames = map[string]string{
	"AU": "Australia",
	"NZ": "New Zealand",
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"SG": "Singapore",
	"MY": "Malaysia",
	"TH": "Thailand",
	"ID": "Indonesia",
	"PH": "Philippines",
	"VN": "Vietnam",
	"JP": "Japan",
	"KR": "South Korea",
	"TW": "Taiwan",
	"HK": "Hong Kong",
	"DE": "Germany",
	"FR": "France",
	"IT": "Italy",
	"ES": "Spain",
	"NL": "Netherlands",
	"BE": "Belgium",
	"AT": "Austria",
	"IE": "Ireland",
	"PT": "Portugal",
	"SE": "Sweden",
	"DK": "Denmark",
	"FI": "Finland",
	"NO": "Norway",
	"CH": "Switzerland",
	"PL": "Poland",
}

// PriceFor returns the shipping fee in minor units for the given ISO
// 3166-1 alpha-2 country code. Codes are matched exactly.
func PriceFor(countryCode string) int64 {
	fee, found := rates[countryCode]
	if !found {
		return DefaultFee
	}
	return fee
}

// DisplayNameFor returns the English name of the country, or the code
// itself when unknown.
func DisplayNameFor(countryCode string) string {
	name, found := countryNames[countryCode]
	if !found {
		return countryCode
	}
	return name
}

// IsServiceable tells whether we ship to the address. A country counts as
// serviceable when it has either a rate or a display name.
func IsServiceable(address *Address) bool {
	if address == nil || address.Country == "" {
		return false
	}
	_, hasRate := rates[address.Country]
	_, hasName := countryNames[address.Country]
	return hasRate || hasName
}

// AllowedCountries lists every serviceable country code in sorted order.
func AllowedCountries() []string {
	seen := map[string]struct{}{}
	for code := range rates {
		seen[code] = struct{}{}
	}
	for code := range countryNames {
		seen[code] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return codes
}
