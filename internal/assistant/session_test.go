package assistant

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap/zaptest"
)

func TestSession_Run(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantLen int
	}{
		{
			name:    "exit command",
			input:   "hello\nadd John 1234567890\nexit\nadd Jane 1234567890\n",
			want:    "Welcome to the assistant bot!\nHow can I help you?\nContact added.\nGood bye!\n",
			wantLen: 1,
		},
		{
			name:    "end of input",
			input:   "add John 1234567890\n\nbogus",
			want:    "Welcome to the assistant bot!\nContact added.\nInvalid command.\n",
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := zaptest.NewLogger(t)
			book := addressbook.New()
			var out bytes.Buffer

			session := NewSession(
				New(book, addressbook.DefaultUpcomingDays, logger),
				SessionOptions{In: strings.NewReader(tt.input), Out: &out},
				logger,
			)

			if err := session.Run(context.Background()); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
			if book.Len() != tt.wantLen {
				t.Errorf("book.Len() = %d, want %d", book.Len(), tt.wantLen)
			}
		})
	}
}

func TestSession_RunStopsOnCancel(t *testing.T) {
	logger := zaptest.NewLogger(t)
	reader, writer := io.Pipe()
	defer writer.Close()

	var out bytes.Buffer
	session := NewSession(
		New(addressbook.New(), addressbook.DefaultUpcomingDays, logger),
		SessionOptions{In: reader, Out: &out},
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}
