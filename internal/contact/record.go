package contact

import (
	"fmt"
	"strings"
)

// BirthdayNotSet is returned by ShowBirthday when no birthday is stored.
const BirthdayNotSet = "Birthday is not set."

// Record is the mutable state of one contact. A Record is not safe for
// concurrent use.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends a validated phone. Duplicates are not checked here;
// callers that care use FindPhone first.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to phone.
func (r *Record) RemovePhone(phone string) error {
	i := r.indexOf(phone)
	if i < 0 {
		return Errorf(ErrNotFound, fmt.Sprintf("No phone found with number '%s'.", phone))
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone equal to oldPhone with newPhone.
// The new value is validated even when oldPhone is absent; an absent
// oldPhone is otherwise a no-op.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	if i := r.indexOf(oldPhone); i >= 0 {
		r.phones[i] = p
	}
	return nil
}

// FindPhone reports whether phone is in the record.
func (r *Record) FindPhone(phone string) (Phone, bool) {
	i := r.indexOf(phone)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday sets the birthday once. A second call fails with ErrState
// whatever the input.
func (r *Record) AddBirthday(text string) error {
	if r.birthday != nil {
		return Errorf(ErrState, "Birthday is already set.")
	}
	b, err := ParseBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ShowPhones joins the phones with ", ".
func (r *Record) ShowPhones() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// ShowBirthday returns the birthday as DD.MM.YYYY or BirthdayNotSet.
func (r *Record) ShowBirthday() string {
	if r.birthday == nil {
		return BirthdayNotSet
	}
	return r.birthday.String()
}

func (r *Record) String() string {
	parts := make([]string, len(r.phones))
	for i, p := range r.phones {
		parts[i] = p.String()
	}
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(parts, "; "))
	if r.birthday != nil {
		s += ", birthday: " + r.birthday.String()
	}
	return s
}

func (r *Record) indexOf(phone string) int {
	for i, p := range r.phones {
		if p.value == phone {
			return i
		}
	}
	return -1
}
