// Package storage persists the whole address book to a single file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of the address book
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// bookFile is the on-disk document
type bookFile struct {
	Contacts []contactEntry `json:"contacts" yaml:"contacts"`
}

type contactEntry struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported address book extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// FileStore loads and saves an address book file
type FileStore struct {
	path   string
	format Format
	logger *zap.Logger
}

// NewFileStore creates a store for path; the format follows the extension
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return &FileStore{
		path:   path,
		format: format,
		logger: logger,
	}, nil
}

// Path returns the file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the address book. A missing file yields an empty book.
func (s *FileStore) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist yet - will be created on first save
			s.logger.Info("Address book file not found, starting empty",
				zap.String("file", s.path))
			return addressbook.New(), nil
		}
		return nil, fmt.Errorf("failed to read address book: %w", err)
	}

	var doc bookFile
	if err := s.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse address book %s: %w", s.path, err)
	}

	book, err := decodeBook(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid address book %s: %w", s.path, err)
	}

	s.logger.Info("Address book loaded",
		zap.String("file", s.path),
		zap.Int("records", book.Len()))

	return book, nil
}

// Save writes the address book, replacing the file only after a complete write
func (s *FileStore) Save(book *addressbook.AddressBook) error {
	data, err := s.marshal(encodeBook(book))
	if err != nil {
		return fmt.Errorf("failed to marshal address book: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write address book: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write address book: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace address book: %w", err)
	}

	s.logger.Info("Address book saved",
		zap.String("file", s.path),
		zap.Int("records", book.Len()))

	return nil
}

func (s *FileStore) marshal(doc bookFile) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (s *FileStore) unmarshal(data []byte, doc *bookFile) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if s.format == FormatYAML {
		return yaml.Unmarshal(data, doc)
	}
	return json.Unmarshal(data, doc)
}

func encodeBook(book *addressbook.AddressBook) bookFile {
	doc := bookFile{Contacts: []contactEntry{}}
	for _, record := range book.Records() {
		entry := contactEntry{
			Name:   record.Name().Value(),
			Phones: []string{},
		}
		for _, phone := range record.Phones() {
			entry.Phones = append(entry.Phones, phone.Value())
		}
		if b := record.Birthday(); b != nil {
			entry.Birthday = b.Value()
		}
		doc.Contacts = append(doc.Contacts, entry)
	}
	return doc
}

func decodeBook(doc bookFile) (*addressbook.AddressBook, error) {
	book := addressbook.New()
	for i, entry := range doc.Contacts {
		record, err := addressbook.NewRecord(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("contact #%d: %w", i+1, err)
		}
		for _, phone := range entry.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("contact %q phone %q: %w", entry.Name, phone, err)
			}
		}
		if entry.Birthday != "" {
			if err := record.AddBirthday(entry.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q birthday %q: %w", entry.Name, entry.Birthday, err)
			}
		}
		book.AddRecord(record)
	}
	return book, nil
}
