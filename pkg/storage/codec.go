package storage

import (
	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
)

// EncodeJSON marshals a value to JSON bytes
func EncodeJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode JSON")
	}

	return data, nil
}

// DecodeJSON unmarshals JSON bytes to a value
func DecodeJSON(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "failed to decode JSON")
	}

	return nil
}
