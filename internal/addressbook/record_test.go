package addressbook

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func phoneValues(r *Record) []string {
	values := []string{}
	for _, p := range r.Phones() {
		values = append(values, p.Value())
	}
	return values
}

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) error = %v", name, err)
	}
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q) error = %v", p, err)
		}
	}
	return r
}

func TestNewRecord(t *testing.T) {
	b, err := ParseBirthday("15.03.1990", time.Now())
	if err != nil {
		t.Fatal(err)
	}

	r, err := NewRecord("Anna", WithBirthday(b))
	if err != nil {
		t.Fatalf("NewRecord() error = %v", err)
	}
	if r.Name().Value() != "Anna" {
		t.Errorf("Name() = %q, want %q", r.Name(), "Anna")
	}
	if r.Birthday() != b {
		t.Errorf("Birthday() = %v, want %v", r.Birthday(), b)
	}
	if len(r.Phones()) != 0 {
		t.Errorf("Phones() = %v, want empty", phoneValues(r))
	}

	if _, err := NewRecord(""); !errors.Is(err, ErrValidation) {
		t.Errorf("NewRecord(\"\") error = %v, want ErrValidation", err)
	}
}

func TestRecord_AddPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "1234567890")

	if got := phoneValues(r); !reflect.DeepEqual(got, []string{"1234567890", "1234567890"}) {
		t.Errorf("phones = %v, want duplicates kept", got)
	}

	if err := r.AddPhone("123"); !errors.Is(err, ErrValidation) {
		t.Errorf("AddPhone(\"123\") error = %v, want ErrValidation", err)
	}
	if len(r.Phones()) != 2 {
		t.Errorf("invalid phone was appended: %v", phoneValues(r))
	}
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222", "1111111111")

	if err := r.RemovePhone("1111111111"); err != nil {
		t.Fatalf("RemovePhone() error = %v", err)
	}
	if got := phoneValues(r); !reflect.DeepEqual(got, []string{"2222222222", "1111111111"}) {
		t.Errorf("phones = %v, want first match removed", got)
	}

	err := r.RemovePhone("3333333333")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("RemovePhone(absent) error = %v, want ErrNotFound", err)
	}
	if err.Error() != "Phone is not found." {
		t.Errorf("RemovePhone(absent) message = %q", err.Error())
	}
}

func TestRecord_EditPhone(t *testing.T) {
	tests := []struct {
		name       string
		oldValue   string
		newValue   string
		wantErr    error
		wantPhones []string
	}{
		{"replace", "1111111111", "5555555555", nil, []string{"5555555555", "2222222222"}},
		{"no-op edit", "1111111111", "1111111111", nil, []string{"1111111111", "2222222222"}},
		{"absent old", "9999999999", "5555555555", ErrNotFound, []string{"1111111111", "2222222222"}},
		{"absent old and invalid new", "9999999999", "55", ErrNotFound, []string{"1111111111", "2222222222"}},
		{"invalid new", "2222222222", "55", ErrValidation, []string{"1111111111", "2222222222"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecord(t, "John", "1111111111", "2222222222")

			err := r.EditPhone(tt.oldValue, tt.newValue)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("EditPhone() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("EditPhone() error = %v, want %v", err, tt.wantErr)
			}

			if got := phoneValues(r); !reflect.DeepEqual(got, tt.wantPhones) {
				t.Errorf("phones = %v, want %v", got, tt.wantPhones)
			}
		})
	}
}

func TestRecord_EditPhoneKeepsIdentity(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111")
	before := r.FindPhone("1111111111")

	if err := r.EditPhone("1111111111", "2222222222"); err != nil {
		t.Fatalf("EditPhone() error = %v", err)
	}

	if before.Value() != "2222222222" {
		t.Errorf("held phone = %q, want edited in place", before.Value())
	}
	if r.FindPhone("2222222222") != before {
		t.Error("FindPhone() returned a different phone after edit")
	}
}

func TestRecord_FindPhone(t *testing.T) {
	r := newTestRecord(t, "John", "1111111111", "2222222222")

	if p := r.FindPhone("2222222222"); p == nil || p.Value() != "2222222222" {
		t.Errorf("FindPhone() = %v, want 2222222222", p)
	}
	if p := r.FindPhone("3333333333"); p != nil {
		t.Errorf("FindPhone(absent) = %v, want nil", p)
	}
}

func TestRecord_AddBirthday(t *testing.T) {
	r := newTestRecord(t, "John")

	if err := r.AddBirthday("01.01.1990"); err != nil {
		t.Fatalf("AddBirthday() error = %v", err)
	}
	if err := r.AddBirthday("02.02.1991"); err != nil {
		t.Fatalf("AddBirthday() error = %v", err)
	}
	if r.Birthday().Value() != "02.02.1991" {
		t.Errorf("Birthday() = %v, want overwritten", r.Birthday())
	}

	if err := r.AddBirthday("1991-02-02"); !errors.Is(err, ErrValidation) {
		t.Errorf("AddBirthday(bad) error = %v, want ErrValidation", err)
	}
	if r.Birthday().Value() != "02.02.1991" {
		t.Errorf("failed AddBirthday changed birthday to %v", r.Birthday())
	}
}

func TestRecord_String(t *testing.T) {
	r := newTestRecord(t, "John", "1234567890", "5555555555")

	want := "Contact name: John, phones: 1234567890; 5555555555, birthday: None"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if err := r.AddBirthday("15.03.1990"); err != nil {
		t.Fatal(err)
	}
	want = "Contact name: John, phones: 1234567890; 5555555555, birthday: 15.03.1990"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
