package addressbook

import (
	"strings"
)

// Field is a contact value with a string form
type Field interface {
	Value() string
	String() string
}

var (
	_ Field = Name{}
	_ Field = (*Phone)(nil)
	_ Field = (*Birthday)(nil)
)

// Name identifies a contact and keys it in the AddressBook
type Name struct {
	value string
}

// NewName trims value and rejects it when nothing is left
func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Name{}, &ValidationError{Field: "name", Value: value, Message: "Name is required."}
	}
	return Name{value: trimmed}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }
