// Package names splits investor names into the parts KYC forms expect.
package names

import (
	"encoding/json"
	"strings"
)

// NameParts holds the positional parts of a full name. An empty field is absent.
type NameParts struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// Split tokenizes full on runs of whitespace.
//
//	"Jane"                -> first
//	"Jane Doe"            -> first, last
//	"Jane Mary Doe Smith" -> first, middle "Mary", last "Doe Smith"
//
// Empty or whitespace-only input yields an empty NameParts.
func Split(full string) NameParts {
	tokens := strings.Fields(full)

	switch len(tokens) {
	case 0:
		return NameParts{}
	case 1:
		return NameParts{FirstName: tokens[0]}
	case 2:
		return NameParts{FirstName: tokens[0], LastName: tokens[1]}
	}
	return NameParts{
		FirstName:  tokens[0],
		MiddleName: tokens[1],
		LastName:   strings.Join(tokens[2:], " "),
	}
}

// Full joins the present parts with single spaces.
func (n NameParts) Full() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.FirstName, n.MiddleName, n.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IsEmpty reports whether no part is present.
func (n NameParts) IsEmpty() bool {
	return n.FirstName == "" && n.MiddleName == "" && n.LastName == ""
}

type namePartsJSON struct {
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MarshalJSON encodes absent parts as null.
func (n NameParts) MarshalJSON() ([]byte, error) {
	return json.Marshal(namePartsJSON{
		FirstName:  optional(n.FirstName),
		MiddleName: optional(n.MiddleName),
		LastName:   optional(n.LastName),
	})
}

// UnmarshalJSON accepts null or missing parts.
func (n *NameParts) UnmarshalJSON(data []byte) error {
	var raw namePartsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = NameParts{}
	if raw.FirstName != nil {
		n.FirstName = *raw.FirstName
	}
	if raw.MiddleName != nil {
		n.MiddleName = *raw.MiddleName
	}
	if raw.LastName != nil {
		n.LastName = *raw.LastName
	}
	return nil
}
