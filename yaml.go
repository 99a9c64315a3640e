package wxr2md

import "strings"

// yamlSpecialChars force quoting when present in a scalar value.
const yamlSpecialChars = ":{}[],*&!%@"

// SafeYAMLValue returns s quoted for use as a YAML scalar value in front
// matter. Values free of special characters are returned unchanged.
// Quoted values use double quotes when the input contains a single quote,
// single quotes otherwise.
//
// Interior quote characters are not escaped beyond this quote-style
// switch, so an input mixing both quote kinds with special characters
// comes out malformed. Known limitation, kept for output compatibility.
func SafeYAMLValue(s string) string {
	if !strings.ContainsAny(s, yamlSpecialChars) {
		return s
	}
	if strings.Contains(s, "'") {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}
