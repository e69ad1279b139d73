// Package book implements the in-memory address book keyed by contact name
// and the upcoming-birthdays query.
package book

import (
	"fmt"
	"sort"
	"time"

	"github.com/smileynet/contactbook/internal/contact"
)

// DefaultWindowDays is the look-ahead for UpcomingBirthdays.
const DefaultWindowDays = 7

// AddressBook maps contact names to records. It is not safe for concurrent use.
type AddressBook struct {
	records map[string]*contact.Record

	now        func() time.Time
	windowDays int
	shift      bool
}

// Option configures an AddressBook.
type Option func(*AddressBook)

// WithClock sets the function used to read "today". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *AddressBook) {
		b.now = now
	}
}

// WithWindow sets the number of days after today included by
// UpcomingBirthdays. Negative values are ignored.
func WithWindow(days int) Option {
	return func(b *AddressBook) {
		if days >= 0 {
			b.windowDays = days
		}
	}
}

// WithWeekendShift toggles moving Saturday and Sunday congratulations to Monday.
func WithWeekendShift(enabled bool) Option {
	return func(b *AddressBook) {
		b.shift = enabled
	}
}

// New creates an empty AddressBook.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records:    make(map[string]*contact.Record),
		now:        time.Now,
		windowDays: DefaultWindowDays,
		shift:      true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord inserts r. Fails with contact.ErrDuplicate if the name is taken.
func (b *AddressBook) AddRecord(r *contact.Record) error {
	name := r.Name()
	if _, ok := b.records[name]; ok {
		return contact.Errorf(contact.ErrDuplicate, fmt.Sprintf("Record with name '%s' already exists.", name))
	}
	b.records[name] = r
	return nil
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return contact.Errorf(contact.ErrNotFound, fmt.Sprintf("No record found with name '%s'.", name))
	}
	delete(b.records, name)
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records sorted by name.
func (b *AddressBook) Records() []*contact.Record {
	names := make([]string, 0, len(b.records))
	for name := range b.records {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*contact.Record, len(names))
	for i, name := range names {
		out[i] = b.records[name]
	}
	return out
}
