package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an identifier assigned by the shop API. It decodes from either a JSON
// number or a JSON string. It encodes as a number only when the text is the
// canonical form of an integer, so "01" or "+7" stay strings.
type ID string

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or a string, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// ParseID reads an id from a URL path or query. Only unsigned decimal
// integers are accepted and leading zeros are dropped.
func ParseID(s string) (ID, error) {
	if s == "" {
		return "", fmt.Errorf("empty id")
	}
	if s[0] < '0' || s[0] > '9' {
		return "", fmt.Errorf("invalid id %q", s)
	}
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return "", fmt.Errorf("invalid id %q", s)
	}
	return ID(strconv.FormatUint(n, 10)), nil
}
