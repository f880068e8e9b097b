package types

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate validates the Experience using the validator.
func (e *Experience) Validate() error {
	return validatorInstance().Struct(e)
}

// Validate validates the Basic section using the validator.
func (b *Basic) Validate() error {
	return validatorInstance().Struct(b)
}

// ValidateKeys validates only the recognized fields named by keys. Extension
// keys carry no rules and are skipped.
func (b *Basic) ValidateKeys(keys ...string) error {
	fields := make([]string, 0, len(keys))
	for _, key := range keys {
		if f, ok := lookupBasicField(key); ok {
			fields = append(fields, f.field)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return validatorInstance().StructPartial(b, fields...)
}

// Validate validates the Template using the validator.
func (t *Template) Validate() error {
	return validatorInstance().Struct(t)
}
