package types

import "encoding/json"

// StringOrNumber decodes a JSON scalar that upstream serializes
// inconsistently as either a string or a number, preserving its textual
// form. Chapter numbers and verse labels both arrive in either shape.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = StringOrNumber(n.String())
	return nil
}

// String returns the scalar's textual form.
func (s StringOrNumber) String() string { return string(s) }
