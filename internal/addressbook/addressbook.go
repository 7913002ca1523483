// Package addressbook holds contact records, the collection keyed by contact
// name, and the upcoming-birthday query.
package addressbook

import (
	"strings"
)

// AddressBook maps contact names to records, remembering insertion order
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New creates an empty address book
func New() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord stores record under its name.
// An existing record with the same name is replaced and keeps its position.
func (b *AddressBook) AddRecord(record *Record) {
	key := record.name.value
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = record
}

// Find returns the record for name, or nil
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record for name. Unknown names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records
func (b *AddressBook) Len() int {
	return len(b.records)
}

// IsEmpty reports whether the book holds no records
func (b *AddressBook) IsEmpty() bool {
	return len(b.records) == 0
}

// Records returns all records in insertion order
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}
	return records
}

func (b *AddressBook) String() string {
	var sb strings.Builder
	for _, record := range b.Records() {
		sb.WriteString(record.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
