package contacts

import (
	"fmt"
	"slices"
)

// Entry is one row of Directory.List
type Entry struct {
	Name     string
	Phone    string
	Birthday string
}

// Directory owns contact records keyed by unique name.
// Enumeration follows insertion order. A Directory is not safe for
// concurrent use.
type Directory struct {
	records map[string]*Record
	order   []string
}

// NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{records: make(map[string]*Record)}
}

// Add inserts r; a record with the same name must not exist
func (d *Directory) Add(r *Record) error {
	if r == nil {
		return &ValidationError{Msg: "Record is required."}
	}
	key := r.Name().String()
	if _, exists := d.records[key]; exists {
		return &ValidationError{Msg: fmt.Sprintf("Record %s is already present.", key)}
	}
	d.records[key] = r
	d.order = append(d.order, key)
	return nil
}

// Find returns the stored record; callers may mutate it in place
func (d *Directory) Find(name string) (*Record, error) {
	r, ok := d.records[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return r, nil
}

// Remove deletes the record stored under name
func (d *Directory) Remove(name string) error {
	if _, ok := d.records[name]; !ok {
		return &NotFoundError{Name: name}
	}
	delete(d.records, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return nil
}

// Len returns the number of stored records
func (d *Directory) Len() int { return len(d.order) }

// Records returns the stored records in insertion order
func (d *Directory) Records() []*Record {
	out := make([]*Record, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.records[key])
	}
	return out
}

// List returns (name, phone, birthday) rows in insertion order.
// An unset birthday is rendered as "".
func (d *Directory) List() []Entry {
	out := make([]Entry, 0, len(d.order))
	for _, r := range d.Records() {
		out = append(out, Entry{
			Name:     r.Name().String(),
			Phone:    r.Phone().String(),
			Birthday: r.Birthday().String(),
		})
	}
	return out
}
