package addressbook

import (
	"fmt"
	"strings"
)

// Record is one contact: a name, its phones and an optional birthday
type Record struct {
	name     Name
	phones   []*Phone
	birthday *Birthday
}

// RecordOption configures a Record at creation
type RecordOption func(*Record)

// WithBirthday sets the birthday of a new record
func WithBirthday(b *Birthday) RecordOption {
	return func(r *Record) {
		r.birthday = b
	}
}

// NewRecord creates a contact with no phones
func NewRecord(name string, opts ...RecordOption) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name returns the contact name
func (r *Record) Name() Name {
	return r.name
}

// Phones returns the phones in insertion order
func (r *Record) Phones() []*Phone {
	phones := make([]*Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday or nil
func (r *Record) Birthday() *Birthday {
	return r.birthday
}

// AddPhone validates value and appends it. Duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to value
func (r *Record) RemovePhone(value string) error {
	for i, phone := range r.phones {
		if phone.value == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return phoneNotFound(value)
}

// EditPhone replaces oldValue with newValue in place.
// Nothing changes unless oldValue exists and newValue is valid.
func (r *Record) EditPhone(oldValue, newValue string) error {
	phone := r.FindPhone(oldValue)
	if phone == nil {
		return phoneNotFound(oldValue)
	}
	if !IsValidPhone(newValue) {
		return invalidPhone(newValue)
	}
	phone.value = newValue
	return nil
}

// FindPhone returns the first phone equal to value, or nil
func (r *Record) FindPhone(value string) *Phone {
	for _, phone := range r.phones {
		if phone.value == value {
			return phone
		}
	}
	return nil
}

// AddBirthday parses value and sets it, replacing any previous birthday
func (r *Record) AddBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// SetBirthday replaces the birthday; nil clears it
func (r *Record) SetBirthday(b *Birthday) {
	r.birthday = b
}

func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, phone := range r.phones {
		values[i] = phone.value
	}

	birthday := "None"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(values, "; "), birthday)
}

func phoneNotFound(value string) error {
	return &NotFoundError{Kind: "Phone", Value: value}
}
