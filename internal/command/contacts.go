package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/contactbook/internal/contact"
)

func (h *Handler) registerContactCommands() {
	h.registry.Register("hello", "", h.hello)
	h.registry.Register("add", "<name> <phone>", h.add)
	h.registry.Register("change", "<name> <old phone> <new phone>", h.change)
	h.registry.Register("phone", "<name>", h.phone)
	h.registry.Register("remove-phone", "<name> <phone>", h.removePhone)
	h.registry.Register("delete", "<name>", h.deleteContact)
	h.registry.Register("all", "", h.all)
	h.registry.Register("add-birthday", "<name> <DD.MM.YYYY>", h.addBirthday)
	h.registry.Register("show-birthday", "<name>", h.showBirthday)
	h.registry.Register("birthdays", "", h.birthdays)
	h.registry.Register("help", "", h.help)
}

func (h *Handler) hello([]string) (string, error) {
	return MsgGreeting, nil
}

// record looks up name or fails with ErrContactNotFound.
func (h *Handler) record(name string) (*contact.Record, error) {
	r, ok := h.book.Find(name)
	if !ok {
		return nil, ErrContactNotFound
	}
	return r, nil
}

// add creates the contact if needed, then appends the phone.
func (h *Handler) add(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	// Validate before creating so a bad phone does not leave an empty contact.
	if _, err := contact.NewPhone(phone); err != nil {
		return "", err
	}

	r, ok := h.book.Find(name)
	msg := "Contact updated."
	if !ok {
		var err error
		r, err = contact.NewRecord(name)
		if err != nil {
			return "", err
		}
		if err := h.book.AddRecord(r); err != nil {
			return "", err
		}
		msg = "Contact added."
	}
	if _, dup := r.FindPhone(phone); dup {
		return "", contact.Errorf(contact.ErrDuplicate, fmt.Sprintf("%s is already in use", phone))
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

func (h *Handler) change(args []string) (string, error) {
	if err := need(args, 3); err != nil {
		return "", err
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	r, err := h.record(name)
	if err != nil {
		return "", err
	}
	if _, ok := r.FindPhone(oldPhone); !ok {
		return "", contact.Errorf(contact.ErrValidation, fmt.Sprintf("%s number is not in %s's address book.", oldPhone, name))
	}
	if err := r.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for %s has been changed. %s", name, r), nil
}

func (h *Handler) phone(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	r, err := h.record(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's phones are %s", args[0], r.ShowPhones()), nil
}

func (h *Handler) removePhone(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	r, err := h.record(name)
	if err != nil {
		return "", err
	}
	if err := r.RemovePhone(phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s removed from %s.", phone, name), nil
}

func (h *Handler) deleteContact(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	if err := h.book.Delete(args[0]); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			return "", ErrContactNotFound
		}
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted.", args[0]), nil
}

func (h *Handler) all([]string) (string, error) {
	records := h.book.Records()
	if len(records) == 0 {
		return "No contacts saved.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) addBirthday(args []string) (string, error) {
	if err := need(args, 2); err != nil {
		return "", err
	}
	name, date := args[0], args[1]

	r, err := h.record(name)
	if err != nil {
		return "", err
	}
	if err := r.AddBirthday(date); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday for %s has been added. %s", name, r), nil
}

func (h *Handler) showBirthday(args []string) (string, error) {
	if err := need(args, 1); err != nil {
		return "", err
	}
	r, err := h.record(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's birthday is %s", args[0], r.ShowBirthday()), nil
}

func (h *Handler) birthdays([]string) (string, error) {
	upcoming := h.book.UpcomingBirthdays()
	if len(upcoming) == 0 {
		return "No upcoming birthdays in the next week.", nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s - %s", u.Name, u.CongratulationDate)
	}
	return strings.Join(lines, "\n"), nil
}

func (h *Handler) help([]string) (string, error) {
	lines := append([]string{"Commands:"}, h.registry.Usage()...)
	lines = append(lines, "close | exit")
	return strings.Join(lines, "\n  "), nil
}
