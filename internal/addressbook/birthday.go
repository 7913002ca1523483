package addressbook

import (
	"time"

	"github.com/username/contact-book/pkg/dateutil"
)

// Birthday is a past calendar date entered as DD.MM.YYYY.
// The parsed date is kept alongside the original text, which is what gets displayed.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday parses value relative to the current moment
func NewBirthday(value string) (*Birthday, error) {
	return ParseBirthday(value, time.Now())
}

// ParseBirthday parses value and requires the date to be strictly before now
func ParseBirthday(value string, now time.Time) (*Birthday, error) {
	date, err := dateutil.ParseDate(value)
	if err != nil {
		return nil, &ValidationError{
			Field:   "birthday",
			Value:   value,
			Message: "Invalid date format. Use DD.MM.YYYY",
		}
	}
	if !date.Before(now) {
		return nil, &ValidationError{Field: "birthday", Value: value, Message: "Invalid date."}
	}
	return &Birthday{value: value, date: date}, nil
}

func (b *Birthday) Value() string  { return b.value }
func (b *Birthday) String() string { return b.value }

// Date returns the birthday at the start of the day, local time
func (b *Birthday) Date() time.Time { return b.date }
