// Package dto holds the flat, id-referencing shapes exchanged over HTTP.
//
// Scalar fields are pointers so an update can tell "absent" from "empty".
// ID and BookIDs are filled on output and ignored on input.
package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Reader struct {
	ID      int64   `json:"id"`
	Name    *string `json:"name"    validate:"required,min=1,max=255"`
	Surname *string `json:"surname" validate:"omitempty,max=255"`
	Phone   *string `json:"phone"   validate:"required,min=1,max=32"`
	Address *string `json:"address" validate:"omitempty,max=512"`
	BookIDs []int64 `json:"bookIds,omitempty"`
}

type Author struct {
	ID           int64   `json:"id"`
	FullName     *string `json:"fullName"     validate:"required,min=1,max=255"`
	PersonalInfo *string `json:"personalInfo" validate:"omitempty"`
	BookIDs      []int64 `json:"bookIds,omitempty"`
}

type Book struct {
	ID              int64   `json:"id"`
	Title           *string `json:"title"           validate:"required,min=1,max=512"`
	InventoryNumber *int64  `json:"inventoryNumber" validate:"required"`
	AuthorIDs       []int64 `json:"authorIds"       validate:"omitempty,dive,gt=0"`
	ReaderID        *int64  `json:"readerId"        validate:"required,gt=0"`
}

// ValidateNew checks a transfer object about to be saved: every required
// field must be present.
func ValidateNew(v any) error {
	return validate.Struct(v)
}

// ValidatePatch checks only the fields present in an update.
func ValidatePatch(v any) error {
	fields := presentFields(v)
	if len(fields) == 0 {
		return nil
	}
	return validate.StructPartial(v, fields...)
}

// presentFields lists the non-nil pointer and non-empty slice fields that
// carry a validate tag.
func presentFields(v any) []string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()

	var fields []string
	for i := 0; i < rt.NumField(); i++ {
		if _, ok := rt.Field(i).Tag.Lookup("validate"); !ok {
			continue
		}
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.Pointer:
			if f.IsNil() {
				continue
			}
		case reflect.Slice:
			if f.Len() == 0 {
				continue
			}
		}
		fields = append(fields, rt.Field(i).Name)
	}
	return fields
}
