package nonneg

import (
	"database/sql/driver"
	"fmt"
)

// MarshalText implements the [encoding.TextMarshaler] interface.
// The encoded form is the bare number, exactly as produced by
// [Value.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value[T]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// The decoded value is validated as in [New], so a negative, NaN, or
// infinite input fails the decode.
// Also see constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value[T]) UnmarshalText(text []byte) error {
	u, err := Parse[T](string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling text: %w", err)
	}
	*v = u
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The encoded form is a bare JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value[T]) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Only a bare JSON number is accepted; the decoded value is validated
// as in [New].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	u, err := Parse[T](string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling JSON: %w", err)
	}
	*v = u
	return nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The binary form is the text form.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (v Value[T]) MarshalBinary() ([]byte, error) {
	return v.MarshalText()
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// The decoded value is validated as in [New].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (v *Value[T]) UnmarshalBinary(data []byte) error {
	return v.UnmarshalText(data)
}

// Scan implements the [sql.Scanner] interface.
// It supports scanning from float64, int64, string, and []byte; the
// scanned value is validated as in [New].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (v *Value[T]) Scan(value any) error {
	var u Value[T]
	var err error
	switch value := value.(type) {
	case float64:
		u, err = New(T(value))
	case int64:
		u, err = New(T(value))
	case string:
		u, err = Parse[T](value)
	case []byte:
		u, err = Parse[T](string(value))
	default:
		err = fmt.Errorf("failed to convert from %T to %T", value, Value[T]{})
	}
	if err != nil {
		return fmt.Errorf("scanning value: %w", err)
	}
	*v = u
	return nil
}

// Value implements the [driver.Valuer] interface.
// The driven value is the number widened to float64.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (v Value[T]) Value() (driver.Value, error) {
	return v.Float64(), nil
}
