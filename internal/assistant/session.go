package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const (
	greeting = "Welcome to the assistant bot!"
	prompt   = "Enter a command: "
)

var (
	greetingStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// SessionOptions configures an interactive session
type SessionOptions struct {
	In         io.Reader // default os.Stdin
	Out        io.Writer // default os.Stdout
	ForcePlain bool      // no colors even on a terminal
}

// Session is the read-eval loop around an Assistant
type Session struct {
	assistant *Assistant
	in        io.Reader
	out       io.Writer
	prompt    bool
	styled    bool
	logger    *zap.Logger
}

// NewSession creates a session. The prompt is shown only when input is a
// terminal; replies are colored only when output is a terminal.
func NewSession(a *Assistant, opts SessionOptions, logger *zap.Logger) *Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	return &Session{
		assistant: a,
		in:        opts.In,
		out:       opts.Out,
		prompt:    isTTY(opts.In),
		styled:    !opts.ForcePlain && isTTY(opts.Out),
		logger:    logger,
	}
}

// isTTY reports whether v is connected to a terminal
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Run reads commands until exit, end of input or ctx cancellation
func (s *Session) Run(ctx context.Context) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.println(greetingStyle, greeting)

	for {
		if s.prompt {
			fmt.Fprint(s.out, s.render(promptStyle, prompt))
		}

		select {
		case <-ctx.Done():
			s.logger.Info("Session interrupted", zap.Error(ctx.Err()))
			fmt.Fprintln(s.out)
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				s.logger.Info("End of input, closing session")
				return nil
			}

			reply := s.assistant.Handle(line)
			if reply.Text != "" {
				style := lipgloss.NewStyle()
				if reply.Error {
					style = errorStyle
				}
				s.println(style, reply.Text)
			}
			if reply.Exit {
				return nil
			}
		}
	}
}

func (s *Session) println(style lipgloss.Style, text string) {
	fmt.Fprintln(s.out, s.render(style, text))
}

// render styles each line on its own so multi-line replies are not padded
func (s *Session) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
