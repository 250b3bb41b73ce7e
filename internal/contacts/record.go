package contacts

import "fmt"

// BirthdayPolicy decides whether a stored birthday may be replaced
type BirthdayPolicy int

const (
	// WriteOnce rejects a second SetBirthday on the same record
	WriteOnce BirthdayPolicy = iota
	// Overwrite lets SetBirthday replace an existing birthday
	Overwrite
)

// Record is a single contact entry
type Record struct {
	name     Name
	phone    Phone
	birthday Birthday
	policy   BirthdayPolicy
}

// RecordOption configures a Record
type RecordOption func(*Record)

// WithBirthdayPolicy sets how SetBirthday treats an existing birthday
func WithBirthdayPolicy(p BirthdayPolicy) RecordOption {
	return func(r *Record) { r.policy = p }
}

// NewRecord validates name and phone and creates a record without a birthday
func NewRecord(name, phone string, opts ...RecordOption) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	p, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n, phone: p}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Name returns the record's name
func (r *Record) Name() Name { return r.name }

// Phone returns the record's phone
func (r *Record) Phone() Phone { return r.phone }

// Birthday returns the record's birthday; IsZero reports it unset
func (r *Record) Birthday() Birthday { return r.birthday }

// EditPhone replaces the phone number
func (r *Record) EditPhone(v string) error {
	p, err := NewPhone(v)
	if err != nil {
		return err
	}
	r.phone = p
	return nil
}

// SetBirthday validates and stores v. Under WriteOnce a second call fails
// and the first value stays.
func (r *Record) SetBirthday(v string) error {
	if !r.birthday.IsZero() && r.policy == WriteOnce {
		return &ValidationError{Msg: "Birthday is already set."}
	}
	b, err := NewBirthday(v)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phone: %s", r.name, r.phone)
}
