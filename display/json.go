package display

import "encoding/json"

// MarshalJSON marshals with two-space indentation so command output stays
// readable when piped to a pager or diffed against golden files.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
