package shopapi

import (
	"bytes"
	"encoding/json"
)

// List decodes a collection that the shop API returns either as a bare JSON
// array or wrapped as {"data": [...], "total": n}.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = List[T]{}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if envelope.Data == nil {
		envelope.Data = []T{}
	}
	*l = envelope.Data
	return nil
}
