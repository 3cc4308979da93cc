package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb wraps a value for reading and writing JSONB columns.
type jsonb struct {
	value interface{}
}

func asJSONB(value interface{}) jsonb {
	return jsonb{value: value}
}

func (j jsonb) Value() (driver.Value, error) {
	if j.value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(j.value)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return raw, nil
}

func (j jsonb) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", src)
	}
	return json.Unmarshal(raw, j.value)
}
