package loaders

import (
	"flag"
	"fmt"
	"reflect"
)

// FlagLoader applies flags that were explicitly given on the command line.
// The flags themselves are registered with DefineFlags before parsing.
type FlagLoader struct {
	set *flag.FlagSet
}

func NewFlagLoader(set *flag.FlagSet) *FlagLoader {
	return &FlagLoader{set: set}
}

func (f *FlagLoader) Load(dest any) error {
	given := make(map[string]string)
	f.set.Visit(func(fl *flag.Flag) {
		given[fl.Name] = fl.Value.String()
	})

	return taggedFields(dest, "flag", func(field reflect.Value, tag string, _ reflect.StructField) error {
		value, ok := given[tag]
		if !ok {
			return nil
		}
		if err := setField(field, value); err != nil {
			return fmt.Errorf("-%s: %w", tag, err)
		}
		return nil
	})
}

// DefineFlags registers one flag per `flag` tag found on dests, using the
// `usage` tag as help text and the current field value as default.
func DefineFlags(set *flag.FlagSet, dests ...any) error {
	for _, dest := range dests {
		err := taggedFields(dest, "flag", func(field reflect.Value, tag string, sf reflect.StructField) error {
			value := &rawValue{
				value:  fmt.Sprint(field.Interface()),
				isBool: field.Kind() == reflect.Bool,
			}
			set.Var(value, tag, sf.Tag.Get("usage"))
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type rawValue struct {
	value  string
	isBool bool
}

func (v *rawValue) String() string {
	if v == nil {
		return ""
	}
	return v.value
}

func (v *rawValue) Set(s string) error {
	v.value = s
	return nil
}

func (v *rawValue) IsBoolFlag() bool {
	return v.isBool
}
