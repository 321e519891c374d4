package props

import "encoding/json"

// Extra holds keys a section does not interpret. They are kept verbatim so
// widget settings owned by other components pass through untouched.
type Extra map[string]json.RawMessage

// marshalWithExtra encodes typed and adds the extra keys it does not set.
func marshalWithExtra(typed any, extra Extra) ([]byte, error) {
	body, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return body, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return json.Marshal(fields)
}

// splitExtra returns the keys of a JSON object that are not listed in known.
func splitExtra(data []byte, known ...string) (Extra, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}
