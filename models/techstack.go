package models

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeTechStack serializes a tech stack for the tech_stack column. A nil
// list is stored as an empty JSON array.
func EncodeTechStack(items []string) datatypes.JSON {
	if len(items) == 0 {
		return datatypes.JSON("[]")
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(encoded)
}

// DecodeTechStack never fails: empty, null or malformed input decodes to an
// empty list.
func DecodeTechStack(raw []byte) []string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return []string{}
	}
	return items
}
