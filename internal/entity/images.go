package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ImageList is an ordered set of image references stored as a JSON column.
type ImageList []string

func (il ImageList) Value() (driver.Value, error) {
	if il == nil {
		il = ImageList{}
	}
	return json.Marshal(il)
}

func (il *ImageList) Scan(src any) error {
	if src == nil {
		*il = ImageList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("can't scan image list from %T", src)
	}
	if len(raw) == 0 {
		*il = ImageList{}
		return nil
	}
	return json.Unmarshal(raw, il)
}
