package company

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	NameMaxLength      = 255
	GSTNumberMaxLength = 64
	AddressMaxLength   = 1024
)

var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany or RestoreCompany constructor")

// Company is the business a shipper account belongs to.
type Company struct {
	id        kernel.UUID
	name      string
	gstNumber string
	address   string

	isConstructed bool
}

func NewCompany(id kernel.UUID, name, gstNumber, address string) (*Company, error) {
	c := &Company{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setGSTNumber(gstNumber),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func RestoreCompany(id kernel.UUID, name, gstNumber, address string) (*Company, error) {
	return NewCompany(id, name, gstNumber, address)
}

func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

func (c *Company) ID() kernel.UUID   { return c.id }
func (c *Company) Name() string      { return c.name }
func (c *Company) GSTNumber() string { return c.gstNumber }
func (c *Company) Address() string   { return c.address }

// Update applies the non-nil fields. Nothing changes when any of them is invalid.
func (c *Company) Update(name, gstNumber, address *string) error {
	next := *c
	var setErrs []error
	if name != nil {
		setErrs = append(setErrs, next.setName(*name))
	}
	if gstNumber != nil {
		setErrs = append(setErrs, next.setGSTNumber(*gstNumber))
	}
	if address != nil {
		setErrs = append(setErrs, next.setAddress(*address))
	}
	if err := errors.Join(setErrs...); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Company) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Company) setName(name string) error {
	v, err := requiredText("name", name, NameMaxLength)
	if err != nil {
		return err
	}
	c.name = v
	return nil
}

func (c *Company) setGSTNumber(gstNumber string) error {
	v, err := requiredText("gst_number", gstNumber, GSTNumberMaxLength)
	if err != nil {
		return err
	}
	c.gstNumber = v
	return nil
}

func (c *Company) setAddress(address string) error {
	v, err := requiredText("address", address, AddressMaxLength)
	if err != nil {
		return err
	}
	c.address = v
	return nil
}

func requiredText(param, value string, maxLength int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(param)
	}
	if len(value) > maxLength {
		return "", errs.NewValueIsOutOfRangeError(param+" length", len(value), 1, maxLength)
	}
	return value, nil
}
