package errors

import "sort"

// FieldErrors collects per-field validation messages. The first message
// recorded for a field wins.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// Fields lists the offending field names in order.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Err returns nil when nothing was recorded, otherwise a CodeValidation
// error whose details are the field messages.
func (f FieldErrors) Err(message string) error {
	if len(f) == 0 {
		return nil
	}
	return New(CodeValidation, message).WithDetails(map[string]string(f))
}

// NotFound reports a missing resource; id is kept in the details for logs.
func NotFound(resource string, id any) *Error {
	return New(CodeNotFound, resource+" not found").WithDetails(map[string]any{"id": id})
}

// Dependency wraps a storage or cache failure observed while doing op.
func Dependency(err error, op string) *Error {
	return Wrap(CodeDependency, err, op)
}
