package utils

import (
	"regexp"
	"strings"
)

// Address holds the mailing address fields scrubbed from a paste.
type Address struct {
	StreetAddress1 string
	StreetAddress2 string
	City           string
	State          string
	ZipCode        string
}

var (
	// Structured block: "Mailing Address ... City, State, Zip" header, then
	// street, optional second line, city, blank, state, a select marker,
	// blank, ZIP.
	addressBlockRegex = regexp.MustCompile(`(?:Mailing Address|Home Address)[\s\t]*City, State, Zip\s*\n([^\n\r]+)\s*\n(?:([^\n\r]*)\s*\n)?([A-Za-z\s]+)\s*\n\s*\n([A-Za-z\s]+)\s*\nselect\s*\n\s*\n(\d{5})`)

	unitDesignatorRegex = regexp.MustCompile(`(?i)Apt|Suite|Unit`)

	// Navigation/UI chrome from the source screen; must never be read as data.
	navTextRegex      = regexp.MustCompile(`(?i)Goto Record|Next Record|Last Record|Remove Record|Save Record`)
	chromeLineRegex   = regexp.MustCompile(`(?i)Goto Record|Next Record|Last Record|Remove Record|Save Record|Return to Search|First Record|Previous Record|Delete`)
	labelLineRegex    = regexp.MustCompile(`(?i)Goto Record|Next Record|Last Record|Remove Record|Save Record|Return to Search|First Record|Previous Record|Delete|select|Open|Get|Has not|Last verified`)
	cityRejectRegex   = regexp.MustCompile(`(?i)^(select|Open|Get|Has not|Last verified|Return to Search|First Record|Previous Record)`)
	streetLineRegex   = regexp.MustCompile(`(?i)^\d+\s+[A-Za-z0-9\s.,]+(Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Court|Ct|Way|Boulevard|Blvd|Place|Pl)`)
	zipLineRegex      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	usStateRegex      = regexp.MustCompile(`(?i)^(Alabama|Alaska|Arizona|Arkansas|California|Colorado|Connecticut|Delaware|Florida|Georgia|Hawaii|Idaho|Illinois|Indiana|Iowa|Kansas|Kentucky|Louisiana|Maine|Maryland|Massachusetts|Michigan|Minnesota|Mississippi|Missouri|Montana|Nebraska|Nevada|New Hampshire|New Jersey|New Mexico|New York|North Carolina|North Dakota|Ohio|Oklahoma|Oregon|Pennsylvania|Rhode Island|South Carolina|South Dakota|Tennessee|Texas|Utah|Vermont|Virginia|Washington|West Virginia|Wisconsin|Wyoming|AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY)$`)
)

// ParseAddress extracts the mailing address. A structured "Mailing Address"
// block is tried first; failing that, a line-by-line scan that permanently
// stops reading once any navigation chrome line is seen.
func ParseAddress(raw string) Address {
	if addr, ok := parseAddressBlock(raw); ok {
		return addr
	}
	return scanAddressLines(raw)
}

func parseAddressBlock(raw string) (Address, bool) {
	m := addressBlockRegex.FindStringSubmatch(raw)
	if m == nil {
		return Address{}, false
	}

	street1 := strings.TrimSpace(m[1])
	street2 := strings.TrimSpace(m[2])

	if navTextRegex.MatchString(street1) {
		return Address{}, false
	}

	addr := Address{
		City:    strings.TrimSpace(m[3]),
		State:   strings.TrimSpace(m[4]),
		ZipCode: strings.TrimSpace(m[5]),
	}

	if street2 != "" && !unitDesignatorRegex.MatchString(street2) {
		// Second line is a street continuation, not a unit designator
		addr.StreetAddress1 = street1 + " " + street2
	} else {
		addr.StreetAddress1 = street1
		addr.StreetAddress2 = street2
	}

	return addr, true
}

// scanAddressLines is the fallback: one forward pass with a latched chrome
// cutoff. Lines after the first chrome line are never considered, and the
// scan does not resume.
func scanAddressLines(raw string) Address {
	var result Address

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	chromeSeen := false

	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)

		if chromeLineRegex.MatchString(line) {
			chromeSeen = true
			continue
		}
		if chromeSeen {
			continue
		}

		if result.StreetAddress1 == "" && streetLineRegex.MatchString(line) {
			result.StreetAddress1 = line
		}

		if result.ZipCode == "" && zipLineRegex.MatchString(line) {
			result.ZipCode = line
			result.State, result.City = scanBackForStateCity(lines, i)
		}
	}

	return result
}

// scanBackForStateCity walks backward up to 5 lines from the ZIP line looking
// for a US state (full name or postal abbreviation), skipping chrome and
// label lines; the city is the usable line immediately before the state.
func scanBackForStateCity(lines []string, zipIndex int) (state, city string) {
	floor := zipIndex - 5
	if floor < 0 {
		floor = 0
	}

	for j := zipIndex - 1; j >= floor; j-- {
		prevLine := strings.TrimSpace(lines[j])
		if labelLineRegex.MatchString(prevLine) {
			continue
		}
		if !usStateRegex.MatchString(prevLine) {
			continue
		}

		state = prevLine
		if j > 0 {
			cityLine := strings.TrimSpace(lines[j-1])
			if cityLine != "" && !cityRejectRegex.MatchString(cityLine) {
				city = cityLine
			}
		}
		return state, city
	}

	return "", ""
}
