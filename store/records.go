package store

import (
	"fmt"
	"reflect"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var _ repository.Repository[*Task] = (*Records[*Task])(nil)

// Records binds one bun model to go-repository-bun's Repository surface.
// The CRUD machinery is the library's; this layer only supplies the model
// handlers, bridging the string UUID primary keys used across the schema
// to the uuid.UUID values the handlers traffic in.
type Records[T any] struct {
	repository.Repository[T]
}

// NewRecords builds a repository for one model. newRecord must return a
// fresh pointer for scan destinations; identifierColumn is the secondary
// lookup column used by GetByIdentifier, typically "name".
func NewRecords[T any](db *bun.DB, newRecord func() T, identifierColumn string) *Records[T] {
	handlers := repository.ModelHandlers[T]{
		NewRecord: newRecord,
		GetID: func(record T) uuid.UUID {
			raw, err := recordID(record)
			if err != nil {
				return uuid.Nil
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				return uuid.Nil
			}
			return id
		},
		SetID: func(record T, id uuid.UUID) {
			setRecordID(record, id.String())
		},
		GetIdentifier: func() string { return identifierColumn },
	}
	return &Records[T]{Repository: repository.NewRepository(db, handlers)}
}

// recordID pulls the ID field off a record via reflection.
func recordID(record any) (string, error) {
	v := reflect.ValueOf(record)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", fmt.Errorf("nil record")
		}
		v = v.Elem()
	}
	field := v.FieldByName("ID")
	if !field.IsValid() || field.Kind() != reflect.String {
		return "", fmt.Errorf("no string ID field found in record")
	}
	return field.String(), nil
}

// setRecordID writes id into a record's ID field. Records without a
// settable string ID are left untouched.
func setRecordID(record any, id string) {
	v := reflect.ValueOf(record)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	field := v.Elem().FieldByName("ID")
	if field.IsValid() && field.Kind() == reflect.String && field.CanSet() {
		field.SetString(id)
	}
}
