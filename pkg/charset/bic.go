package charset

import "sync"

var (
	countryOnce sync.Once
	validCtry   map[string]bool
)

// initCountryTable loads a representative ISO-3166-1 alpha-2 table covering the
// jurisdictions that appear in real SWIFT traffic and the EU/EEA set MT103
// NVR C2 depends on. It is not exhaustive of all ~250 codes (see DESIGN.md);
// unknown-but-plausible codes fail BIC country validation rather than being
// silently accepted.
func initCountryTable() {
	codes := []string{
		"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AO", "AR", "AT", "AU", "AZ",
		"BA", "BB", "BD", "BE", "BF", "BG", "BH", "BI", "BJ", "BM", "BN", "BO",
		"BR", "BS", "BT", "BW", "BY", "BZ", "CA", "CD", "CF", "CG", "CH", "CI",
		"CL", "CM", "CN", "CO", "CR", "CU", "CV", "CY", "CZ", "DE", "DJ", "DK",
		"DM", "DO", "DZ", "EC", "EE", "EG", "ER", "ES", "ET", "FI", "FJ", "FM",
		"FR", "GA", "GB", "GD", "GE", "GH", "GM", "GN", "GQ", "GR", "GT", "GW",
		"GY", "HK", "HN", "HR", "HT", "HU", "ID", "IE", "IL", "IN", "IQ", "IR",
		"IS", "IT", "JM", "JO", "JP", "KE", "KG", "KH", "KI", "KM", "KN", "KP",
		"KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK", "LR", "LS", "LT",
		"LU", "LV", "LY", "MA", "MC", "MD", "ME", "MG", "MH", "MK", "ML", "MM",
		"MN", "MO", "MR", "MT", "MU", "MV", "MW", "MX", "MY", "MZ", "NA", "NE",
		"NG", "NI", "NL", "NO", "NP", "NR", "NZ", "OM", "PA", "PE", "PG", "PH",
		"PK", "PL", "PT", "PW", "PY", "QA", "RO", "RS", "RU", "RW", "SA", "SB",
		"SC", "SD", "SE", "SG", "SI", "SK", "SL", "SM", "SN", "SO", "SR", "SS",
		"ST", "SV", "SY", "SZ", "TD", "TG", "TH", "TJ", "TL", "TM", "TN", "TO",
		"TR", "TT", "TV", "TW", "TZ", "UA", "UG", "US", "UY", "UZ", "VA", "VC",
		"VE", "VN", "VU", "WS", "YE", "ZA", "ZM", "ZW",
	}
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	validCtry = m
}

func countryTable() map[string]bool {
	countryOnce.Do(initCountryTable)
	return validCtry
}

// IsValidCountry reports whether code is a known ISO-3166-1 alpha-2 code.
func IsValidCountry(code string) bool {
	return countryTable()[code]
}

// euEEACountries is the set MT103 NVR C2 checks sender/receiver BIC country
// against (spec.md §4.7, "C2: when both sender and receiver BIC country
// codes are in the EU/EEA set, 33B is mandatory").
var euEEACountries = map[string]bool{
	"AT": true, "BE": true, "BG": true, "HR": true, "CY": true, "CZ": true,
	"DK": true, "EE": true, "FI": true, "FR": true, "DE": true, "GR": true,
	"HU": true, "IE": true, "IT": true, "LV": true, "LT": true, "LU": true,
	"MT": true, "NL": true, "PL": true, "PT": true, "RO": true, "SK": true,
	"SI": true, "ES": true, "SE": true, "IS": true, "LI": true, "NO": true,
}

// IsEUEEACountry reports whether code is part of the EU/EEA set.
func IsEUEEACountry(code string) bool { return euEEACountries[code] }

// ParseBIC validates the 8 or 11 character structure of a BIC: 4 alpha bank
// code, 2 alpha country code (checked against the ISO table), 2 alphanumeric
// location code, optional 3 alphanumeric branch code.
func ParseBIC(s string) (string, error) {
	if len(s) != 8 && len(s) != 11 {
		return "", fail("BIC", s, "8 or 11 characters")
	}
	bank, country, location := s[0:4], s[4:6], s[6:8]
	for _, r := range bank {
		if !IsAlphaUpper(r) {
			return "", fail("BIC", s, "4 alpha bank code")
		}
	}
	if !IsValidCountry(country) {
		return "", fail("BIC", s, "valid ISO-3166-1 country code")
	}
	for _, r := range location {
		if !isAlnumUpper(r) {
			return "", fail("BIC", s, "2 alphanumeric location code")
		}
	}
	if len(s) == 11 {
		for _, r := range s[8:11] {
			if !isAlnumUpper(r) {
				return "", fail("BIC", s, "3 alphanumeric branch code")
			}
		}
	}
	return s, nil
}

func isAlnumUpper(r rune) bool { return IsAlphaUpper(r) || IsDigit(r) }

// BICCountry returns the 2-letter country component of a validated BIC.
func BICCountry(bic string) string {
	if len(bic) < 6 {
		return ""
	}
	return bic[4:6]
}
