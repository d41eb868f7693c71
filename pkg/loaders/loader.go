package loaders

import (
	"fmt"
	"reflect"
)

type Loader interface {
	Load(dest any) error
}

// loads all the configuration in the following order. Where the last one "wins"
type ChainLoader struct {
	loaders []Loader
}

func NewChainLoader(loaders ...Loader) *ChainLoader {
	return &ChainLoader{loaders: loaders}
}

func (c *ChainLoader) Load(dest any) error {
	for _, loader := range c.loaders {
		if err := loader.Load(dest); err != nil {
			return fmt.Errorf("unable to load config: %w", err)
		}
	}

	return nil
}

// taggedFields calls fn for every settable field of the struct behind dest carrying the tag.
func taggedFields(dest any, tagName string, fn func(field reflect.Value, tag string, sf reflect.StructField) error) error {
	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() || ptr.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a struct pointer")
	}

	val := ptr.Elem()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() { // skip all fields that cannot be set
			continue
		}

		tag, ok := fieldType.Tag.Lookup(tagName)
		if !ok {
			continue
		}

		if err := fn(field, tag, fieldType); err != nil {
			return err
		}
	}

	return nil
}
