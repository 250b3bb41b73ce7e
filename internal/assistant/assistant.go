package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/username/address-book/internal/birthdays"
	"github.com/username/address-book/internal/contacts"
	"github.com/username/address-book/pkg/dateutil"
	"go.uber.org/zap"
)

// Clock returns the current time; only its calendar date is used
type Clock func() time.Time

type handlerFunc func(args []string) (string, error)

// Assistant dispatches line commands against a contact directory
type Assistant struct {
	dir       *contacts.Directory
	scheduler *birthdays.Scheduler
	policy    contacts.BirthdayPolicy
	clock     Clock
	logger    *zap.Logger
	handlers  map[string]handlerFunc
}

// NewAssistant creates a new Assistant. A nil clock means the system clock.
func NewAssistant(
	dir *contacts.Directory,
	scheduler *birthdays.Scheduler,
	policy contacts.BirthdayPolicy,
	clock Clock,
	logger *zap.Logger,
) *Assistant {
	if clock == nil {
		clock = time.Now
	}
	a := &Assistant{
		dir:       dir,
		scheduler: scheduler,
		policy:    policy,
		clock:     clock,
		logger:    logger,
	}
	a.handlers = map[string]handlerFunc{
		"hello":         a.hello,
		"add":           a.addContact,
		"change":        a.changeContact,
		"phone":         a.showContact,
		"delete":        a.deleteContact,
		"add-birthday":  a.addBirthday,
		"show-birthday": a.showBirthday,
		"birthdays":     a.birthdays,
		"all":           a.all,
	}
	return a
}

// ParseInput splits a line into a lower-cased command and its arguments
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Handle executes one line and returns the reply. quit is true for
// close/exit. An empty line yields an empty reply.
func (a *Assistant) Handle(line string) (reply string, quit bool) {
	cmd, args := ParseInput(line)
	switch cmd {
	case "":
		return "", false
	case "close", "exit":
		return "Good bye!", true
	}

	handler, ok := a.handlers[cmd]
	if !ok {
		return "Invalid command.", false
	}

	reply, err := handler(args)
	if err != nil {
		a.logger.Warn("Command failed",
			zap.String("command", cmd),
			zap.Strings("args", args),
			zap.Error(err))
		return renderError(err), false
	}
	a.logger.Debug("Command handled", zap.String("command", cmd))
	return reply, false
}

// Run reads commands from in until EOF, close/exit or ctx cancellation and
// writes replies to out.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "Enter a command: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		reply, quit := a.Handle(scanner.Text())
		if reply != "" {
			fmt.Fprintln(out, reply)
		}
		if quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}
	return nil
}

func renderError(err error) string {
	var notFound *contacts.NotFoundError
	if errors.As(err, &notFound) {
		return "Error: Contact is not found."
	}
	return "Error: " + err.Error()
}

func usage(msg string) error {
	return &contacts.ValidationError{Msg: msg}
}

func (a *Assistant) hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("Name & Phone arguments are required.")
	}
	rec, err := contacts.NewRecord(args[0], args[1], contacts.WithBirthdayPolicy(a.policy))
	if err != nil {
		return "", err
	}
	if err := a.dir.Add(rec); err != nil {
		return "", err
	}
	return "Contact is added.", nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("Name & Phone arguments are required.")
	}
	rec, err := a.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(args[1]); err != nil {
		return "", err
	}
	return "Contact is updated.", nil
}

func (a *Assistant) showContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage("Name is required argument.")
	}
	rec, err := a.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage("Name is required argument.")
	}
	if err := a.dir.Remove(args[0]); err != nil {
		return "", err
	}
	return "Contact is deleted.", nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("Name & Birthday arguments are required.")
	}
	rec, err := a.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Bday is added.", nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage("Name is required argument.")
	}
	rec, err := a.dir.Find(args[0])
	if err != nil {
		return "", err
	}
	if rec.Birthday().IsZero() {
		return "", usage("This record has no birthday set.")
	}
	return "Birthday: " + rec.Birthday().String(), nil
}

func (a *Assistant) birthdays(_ []string) (string, error) {
	digest := a.scheduler.Run(a.dir, dateutil.Truncate(a.clock()))
	if len(digest) == 0 {
		return "No birthdays in the coming week.", nil
	}
	return digest.String(), nil
}

func (a *Assistant) all(_ []string) (string, error) {
	return FormatTable(a.dir.List()), nil
}
