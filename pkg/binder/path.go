package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder using the provided extractor, such
// as chi.URLParam. String struct fields tagged `path:"name"` receive the
// value of the corresponding path parameter; `path:"-"` skips the field.
//
//	type GetContactRequest struct {
//		ID string `path:"id"`
//	}
//
//	r.Get("/{id}", handler.Wrap(s.byID,
//		handler.WithBinders[GetContactRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must point to a struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := range rt.NumField() {
			field := rt.Field(i)
			tag, ok := field.Tag.Lookup("path")
			if !ok || tag == "-" || !field.IsExported() {
				continue
			}
			if field.Type.Kind() != reflect.String {
				return fmt.Errorf("%w: field %s must be a string", ErrInvalidPath, field.Name)
			}
			if value := extractor(r, tag); value != "" {
				rv.Field(i).SetString(value)
			}
		}

		return nil
	}
}
