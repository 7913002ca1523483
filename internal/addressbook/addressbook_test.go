package addressbook

import (
	"testing"
)

func TestAddressBook_AddFindDelete(t *testing.T) {
	book := New()
	if !book.IsEmpty() {
		t.Fatal("New() book is not empty")
	}

	john := newTestRecord(t, "John", "1234567890")
	jane := newTestRecord(t, "Jane", "9876543210")
	book.AddRecord(john)
	book.AddRecord(jane)

	if book.Len() != 2 {
		t.Errorf("Len() = %d, want 2", book.Len())
	}
	if got := book.Find("John"); got != john {
		t.Errorf("Find(John) = %v, want %v", got, john)
	}
	if got := book.Find("john"); got != nil {
		t.Errorf("Find(john) = %v, want exact match only", got)
	}

	book.Delete("John")
	if book.Find("John") != nil {
		t.Error("Find(John) after Delete should be nil")
	}
	if book.Len() != 1 {
		t.Errorf("Len() = %d, want 1", book.Len())
	}
}

func TestAddressBook_DeleteMissingIsNoop(t *testing.T) {
	book := New()
	book.AddRecord(newTestRecord(t, "John", "1234567890"))
	before := book.String()

	book.Delete("Nobody")

	if book.Len() != 1 || book.String() != before {
		t.Errorf("Delete(missing) changed the book: %q", book.String())
	}
}

func TestAddressBook_AddRecordOverwrites(t *testing.T) {
	book := New()
	first := newTestRecord(t, "John", "1111111111")
	if err := first.AddBirthday("01.01.1990"); err != nil {
		t.Fatal(err)
	}
	book.AddRecord(first)
	book.AddRecord(newTestRecord(t, "Jane", "3333333333"))

	replacement := newTestRecord(t, "John", "2222222222")
	book.AddRecord(replacement)

	got := book.Find("John")
	if got != replacement {
		t.Fatalf("Find(John) = %v, want replacement", got)
	}
	if got.FindPhone("1111111111") != nil || got.Birthday() != nil {
		t.Errorf("old phones or birthday survived: %v", got)
	}
	if book.Len() != 2 {
		t.Errorf("Len() = %d, want 2", book.Len())
	}
	if records := book.Records(); records[0] != replacement {
		t.Errorf("replacement lost its position: first record is %v", records[0])
	}
}

func TestAddressBook_String(t *testing.T) {
	book := New()
	if book.String() != "" {
		t.Errorf("empty String() = %q", book.String())
	}

	book.AddRecord(newTestRecord(t, "John", "1234567890"))
	book.AddRecord(newTestRecord(t, "Jane"))

	want := "Contact name: John, phones: 1234567890, birthday: None\n" +
		"Contact name: Jane, phones: , birthday: None\n"
	if got := book.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
