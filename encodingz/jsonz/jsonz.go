// Package jsonz provides generic helpers around encoding/json.
package jsonz

import "encoding/json"

// Unmarshal decodes bs into a new T.
// It is handy inside UnmarshalJSON methods that decode a scalar first:
//
//	s, err := jsonz.Unmarshal[string](b)
func Unmarshal[T any](bs []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(bs, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
