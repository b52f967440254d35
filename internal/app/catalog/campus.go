package catalog

import "strings"

// campusNames maps the registrar's campus codes to display names. Unknown
// codes pass through unchanged so nothing in the feed is silently dropped.
var campusNames = map[string]string{
	"BUS":    "Busch",
	"LIV":    "Livingston",
	"CAC":    "College Avenue",
	"D/C":    "Cook/Douglass",
	"ONLINE": "Online",
}

// NormalizeCampus maps a raw campus code to its display name. Matching is
// case-insensitive; unrecognized codes are returned trimmed as-is.
func NormalizeCampus(code string) string {
	trimmed := strings.TrimSpace(code)
	if name, ok := campusNames[strings.ToUpper(trimmed)]; ok {
		return name
	}
	return trimmed
}

func isOnlineCampus(code string) bool {
	return strings.EqualFold(strings.TrimSpace(code), "ONLINE")
}
