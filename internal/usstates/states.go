package usstates

import "strings"

// codes covers the 50 states plus DC and the territories the NWS issues
// alerts for.
var codes = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
	"DC": "District of Columbia", "PR": "Puerto Rico", "VI": "U.S. Virgin Islands",
	"GU": "Guam", "AS": "American Samoa", "MP": "Northern Mariana Islands",
}

// Normalize upper-cases a state code, returning false if it is not a known
// US state or territory.
func Normalize(code string) (string, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	_, ok := codes[normalized]
	return normalized, ok
}

// Name returns the full name for a state code
func Name(code string) (string, bool) {
	name, ok := codes[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}
