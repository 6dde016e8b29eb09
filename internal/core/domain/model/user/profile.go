package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"parcels/internal/pkg/errs"
)

// Profile is the personal and contact data of a user. Build it with
// NewProfile; names and contact fields are trimmed and the e-mail is
// lower-cased.
type Profile struct {
	FirstName      string
	SecondName     string
	LastName       string
	SecondLastName string
	DocumentNumber string
	Email          string
	Address        string
	Phone          string
}

// NewProfile validates the mandatory fields: first name, last name,
// document number, e-mail, address and phone. All missing fields are
// reported together.
func NewProfile(p Profile) (Profile, error) {
	p = p.normalized()

	err := errors.Join(
		required("first_name", p.FirstName),
		required("last_name", p.LastName),
		required("document_number", p.DocumentNumber),
		required("email", p.Email),
		required("address", p.Address),
		required("phone", p.Phone),
	)
	if err != nil {
		return Profile{}, err
	}

	if err = ValidateEmail(p.Email); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that email is a bare address ("name@host").
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", email))
	}
	return nil
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Merge returns a copy of p where every non-empty field of changes wins.
// The e-mail and document number are identity fields and are not merged.
func (p Profile) Merge(changes Profile) Profile {
	changes = changes.normalized()
	pick := func(current, next string) string {
		if next != "" {
			return next
		}
		return current
	}
	p.FirstName = pick(p.FirstName, changes.FirstName)
	p.SecondName = pick(p.SecondName, changes.SecondName)
	p.LastName = pick(p.LastName, changes.LastName)
	p.SecondLastName = pick(p.SecondLastName, changes.SecondLastName)
	p.Address = pick(p.Address, changes.Address)
	p.Phone = pick(p.Phone, changes.Phone)
	return p
}

func (p Profile) normalized() Profile {
	return Profile{
		FirstName:      strings.TrimSpace(p.FirstName),
		SecondName:     strings.TrimSpace(p.SecondName),
		LastName:       strings.TrimSpace(p.LastName),
		SecondLastName: strings.TrimSpace(p.SecondLastName),
		DocumentNumber: strings.TrimSpace(p.DocumentNumber),
		Email:          NormalizeEmail(p.Email),
		Address:        strings.TrimSpace(p.Address),
		Phone:          strings.TrimSpace(p.Phone),
	}
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
