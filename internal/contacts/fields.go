package contacts

import (
	"time"
	"unicode/utf8"

	"github.com/username/address-book/pkg/dateutil"
)

const (
	maxNameLength = 20
	phoneLength   = 10
)

// Name is a contact name of at most 20 characters
type Name struct {
	value string
}

// NewName validates v as a contact name
func NewName(v string) (Name, error) {
	if utf8.RuneCountInString(v) > maxNameLength {
		return Name{}, invalid("Name shouldn't be longer than %d symbols.", maxNameLength)
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Phone is a phone number of exactly 10 digits
type Phone struct {
	value string
}

// NewPhone validates v as a phone number
func NewPhone(v string) (Phone, error) {
	if len(v) != phoneLength || !isDigits(v) {
		return Phone{}, invalid("Phone number should be %d digits long.", phoneLength)
	}
	return Phone{value: v}, nil
}

func (p Phone) String() string { return p.value }

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Birthday is a date of birth without time of day.
// The zero value is an absent birthday and renders as "".
type Birthday struct {
	date time.Time
	set  bool
}

// NewBirthday parses v as DD.MM.YYYY
func NewBirthday(v string) (Birthday, error) {
	date, err := dateutil.ParseDate(v)
	if err != nil {
		return Birthday{}, &ValidationError{Msg: err.Error()}
	}
	return Birthday{date: date, set: true}, nil
}

// IsZero reports whether the birthday is absent. 01.01.0001 is a valid
// birthday even though it equals the zero time.
func (b Birthday) IsZero() bool { return !b.set }

// Date returns the stored date of birth
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return dateutil.FormatDate(b.date)
}
