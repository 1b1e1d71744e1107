package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap stores a nested JSON block in a single column. Shapes are validated
// at the API boundary; the database only sees opaque JSON.
type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return errors.New("jsonmap: unsupported source type")
}

// GormDataType tells gorm to create a jsonb/json column per dialect.
func (JSONMap) GormDataType() string { return "jsonb" }
