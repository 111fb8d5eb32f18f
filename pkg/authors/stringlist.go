package authors

import "encoding/json"

// StringList is an ordered list of strings that tolerates scalar input:
// decoding a single string yields a one-element list, decoding a sequence
// yields the sequence unchanged. It is used for advisor identifiers, which
// arrive as either one identifier or many.
type StringList []string

// UnmarshalYAML implements scalar-or-sequence coercion for YAML input.
func (l *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := unmarshal(&many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// UnmarshalJSON implements scalar-or-sequence coercion for JSON input.
func (l *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}
