// Package assistant turns text commands into address book operations and
// user-facing replies.
package assistant

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

var errContactNotFound = errors.New("Contact not found.")

// usageError carries the message shown when arguments are missing
type usageError string

func (e usageError) Error() string { return string(e) }

// Reply is the answer to one input line
type Reply struct {
	Text  string
	Error bool // Text describes a failed command
	Exit  bool // the session should end
}

type command struct {
	usage string
	run   func(args []string) (string, error)
}

// Assistant dispatches commands against an address book
type Assistant struct {
	book       *addressbook.AddressBook
	windowDays int
	logger     *zap.Logger
	fold       cases.Caser
	commands   map[string]command
	aliases    map[string]string
}

// New creates an assistant over book. windowDays is the default for "birthdays".
func New(book *addressbook.AddressBook, windowDays int, logger *zap.Logger) *Assistant {
	a := &Assistant{
		book:       book,
		windowDays: windowDays,
		logger:     logger,
		fold:       cases.Fold(),
	}

	a.commands = map[string]command{
		"hello":         {"hello", a.hello},
		"add":           {"add <name> <phone>", a.addContact},
		"change":        {"change <name> <old phone> <new phone>", a.changeContact},
		"phone":         {"phone <name>", a.showPhone},
		"remove-phone":  {"remove-phone <name> <phone>", a.removePhone},
		"delete":        {"delete <name>", a.deleteContact},
		"all":           {"all", a.showAll},
		"add-birthday":  {"add-birthday <name> <DD.MM.YYYY>", a.addBirthday},
		"show-birthday": {"show-birthday <name>", a.showBirthday},
		"birthdays":     {"birthdays [days]", a.birthdays},
		"help":          {"help", a.help},
	}
	a.aliases = map[string]string{
		"add_birthday":  "add-birthday",
		"show_birthday": "show-birthday",
		"remove_phone":  "remove-phone",
	}

	return a
}

// ParseInput splits a line into a command word and its arguments
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Handle runs one input line
func (a *Assistant) Handle(line string) Reply {
	word, args := ParseInput(line)
	if word == "" {
		return Reply{}
	}

	name := a.fold.String(word)
	if alias, ok := a.aliases[name]; ok {
		name = alias
	}

	if name == "exit" || name == "close" {
		return Reply{Text: "Good bye!", Exit: true}
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.logger.Debug("Unknown command", zap.String("command", word))
		return Reply{Text: "Invalid command.", Error: true}
	}

	text, err := cmd.run(args)
	if err != nil {
		a.logger.Debug("Command failed",
			zap.String("command", name),
			zap.Error(err))
		return Reply{Text: errorMessage(err), Error: true}
	}

	a.logger.Debug("Command handled",
		zap.String("command", name),
		zap.Int("args", len(args)))

	return Reply{Text: text}
}

// errorMessage maps an error to the text shown to the user
func errorMessage(err error) string {
	var (
		validationErr *addressbook.ValidationError
		notFoundErr   *addressbook.NotFoundError
		usage         usageError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()
	case errors.As(err, &usage):
		return usage.Error()
	case errors.Is(err, errContactNotFound):
		return errContactNotFound.Error()
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (a *Assistant) find(name string) (*addressbook.Record, error) {
	record := a.book.Find(name)
	if record == nil {
		return nil, errContactNotFound
	}
	return record, nil
}

func (a *Assistant) hello(args []string) (string, error) {
	return "How can I help you?", nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError("Give me name and phone please.")
	}
	name, phone := args[0], args[1]

	if record := a.book.Find(name); record != nil {
		if err := record.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	record, err := addressbook.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	a.book.AddRecord(record)
	return "Contact added.", nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", usageError("Give me name, old phone and new phone please.")
	}

	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Contact updated.", nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError("Give me a name please.")
	}

	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	phones := record.Phones()
	if len(phones) == 0 {
		return "No phones saved.", nil
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.Value()
	}
	return strings.Join(values, "; "), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError("Give me name and phone please.")
	}

	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.RemovePhone(args[1]); err != nil {
		return "", err
	}
	return "Phone removed.", nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError("Give me a name please.")
	}
	if _, err := a.find(args[0]); err != nil {
		return "", err
	}
	a.book.Delete(args[0])
	return "Contact deleted.", nil
}

func (a *Assistant) showAll(args []string) (string, error) {
	if a.book.IsEmpty() {
		return "The contact book is empty.", nil
	}
	return strings.TrimSuffix(a.book.String(), "\n"), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", usageError("Give me name and birthday (DD.MM.YYYY) please.")
	}

	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", usageError("Give me a name please.")
	}

	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}
	if record.Birthday() == nil {
		return "Birthday is not defined.", nil
	}
	return record.Birthday().String(), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	days := a.windowDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", usageError("Days must be a non-negative number.")
		}
		days = n
	}

	upcoming := a.book.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	return FormatUpcoming(upcoming), nil
}

func (a *Assistant) help(args []string) (string, error) {
	usages := make([]string, 0, len(a.commands)+1)
	for _, cmd := range a.commands {
		usages = append(usages, "  "+cmd.usage)
	}
	usages = append(usages, "  exit | close")
	sort.Strings(usages)
	return "Commands:\n" + strings.Join(usages, "\n"), nil
}

// FormatUpcoming renders one "name: DD.MM.YYYY" line per birthday
func FormatUpcoming(upcoming []addressbook.UpcomingBirthday) string {
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Name, u.Birthday)
	}
	return strings.Join(lines, "\n")
}
