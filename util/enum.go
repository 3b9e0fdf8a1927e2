package util

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Enum maps a closed set of values to their flag/text names.
type Enum[T comparable] struct {
	Names     map[T]string
	Values    map[string]T
	errFormat string
}

func NewEnum[T comparable](names map[T]string) Enum[T] {
	values := lo.Invert(names)
	return Enum[T]{
		Names:     names,
		Values:    values,
		errFormat: "invalid value %q, expected one of: " + strings.Join(sortedKeys(values), ", "),
	}
}

func sortedKeys[T any](m map[string]T) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

func (e Enum[T]) Options() []string { return sortedKeys(e.Values) }

func (e Enum[T]) ToString(value T) string {
	return e.Names[value]
}
func (e Enum[T]) ToValue(name string) (T, bool) {
	value, ok := e.Values[strings.ToLower(name)]
	return value, ok
}

func (e Enum[T]) Parse(name string) (T, error) {
	val, ok := e.ToValue(name)
	if !ok {
		return val, fmt.Errorf(e.errFormat, name)
	}
	return val, nil
}

// Value binds the enum to a pflag.Value so it can be used as a flag.
func (e Enum[T]) Value(into *T) *EnumValue[T] {
	return &EnumValue[T]{enum: e, into: into}
}

type EnumValue[T comparable] struct {
	enum Enum[T]
	into *T
}

func (v *EnumValue[T]) String() string { return v.enum.ToString(*v.into) }
func (v *EnumValue[T]) Type() string   { return "string" }
func (v *EnumValue[T]) Set(s string) error {
	val, err := v.enum.Parse(s)
	if err != nil {
		return err
	}
	*v.into = val
	return nil
}
