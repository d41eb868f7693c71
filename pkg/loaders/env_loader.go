package loaders

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

type EnvLoader struct{}

func NewEnvloader() *EnvLoader {
	return &EnvLoader{}
}

func (e *EnvLoader) Load(dest any) error {
	return taggedFields(dest, "env", func(field reflect.Value, tag string, _ reflect.StructField) error {
		envValue, ok := os.LookupEnv(tag)
		if !ok {
			return nil
		}
		if err := setField(field, envValue); err != nil {
			return fmt.Errorf("%s: %w", tag, err)
		}
		return nil
	})
}

func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(num)
	case reflect.Bool:
		boolean, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolean)
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			values := strings.Split(value, ",")
			field.Set(reflect.ValueOf(values))
		}
	}
	return nil
}
