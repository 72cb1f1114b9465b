package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the article's field constraints before persistence.
func (a *Article) Validate() error {
	return validate.Struct(a)
}

func (c *Category) Validate() error {
	return validate.Struct(c)
}

func (t *Tag) Validate() error {
	return validate.Struct(t)
}

func (c *Comment) Validate() error {
	return validate.Struct(c)
}

func (u *User) Validate() error {
	return validate.Struct(u)
}
