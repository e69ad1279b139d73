// Package contact holds the validated value types and the Record that
// describe a single entry in the address book.
package contact

import (
	"time"

	"github.com/go-playground/validator"
)

// DateLayout is the DD.MM.YYYY layout used for birthday input and output.
const DateLayout = "02.01.2006"

// User-facing validation messages.
const (
	msgNameRequired   = "Name is required."
	msgPhoneInvalid   = "Phone number must consist of exactly 10 digits."
	msgBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"
)

var validate = validator.New()

// Name identifies a contact and is the address book key.
type Name struct {
	value string
}

// NewName rejects an empty name.
func NewName(s string) (Name, error) {
	if err := validate.Var(s, "required"); err != nil {
		return Name{}, Errorf(ErrValidation, msgNameRequired)
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is a string of exactly ten digits.
type Phone struct {
	value string
}

// NewPhone validates s as a ten digit number.
func NewPhone(s string) (Phone, error) {
	if err := validate.Var(s, "required,len=10,number"); err != nil {
		return Phone{}, Errorf(ErrValidation, msgPhoneInvalid)
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// ParseBirthday parses s in DD.MM.YYYY form. Day and month must be two digits.
func ParseBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, Errorf(ErrValidation, msgBirthdayFormat)
	}
	return Birthday{date: t}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Month returns the birthday month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of month.
func (b Birthday) Day() int { return b.date.Day() }

func (b Birthday) String() string { return b.date.Format(DateLayout) }
