package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ErrScanValueNotBytes indicates the database value is not a byte slice.
var ErrScanValueNotBytes = errors.New("valueobject: stringlist scan value is not []byte")

// StringList stores a JSON array of strings, typically in a JSONB column.
type StringList []string

// Value implements driver.Valuer for StringList.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for StringList.
func (s *StringList) Scan(value any) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	var bytes []byte

	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	case json.RawMessage:
		bytes = []byte(v)
	default:
		return ErrScanValueNotBytes
	}

	var result StringList
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*s = result
	return nil
}

// Contains reports whether the list includes the given value.
func (s StringList) Contains(value string) bool {
	for _, v := range s {
		if v == value {
			return true
		}
	}
	return false
}
