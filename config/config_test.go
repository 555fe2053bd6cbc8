package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoZeroFields(t *testing.T) {
	cfg := Default()

	for _, field := range visit(newVar(*cfg), "Config", false) {
		assert.Fail(t, "zero-value field", field)
	}
}

func TestDefaultLimits(t *testing.T) {
	cfg := Default()
	require.Equal(t, 1024, cfg.NET.ReadBufferSize)
	require.GreaterOrEqual(t, cfg.NET.MaxFrameSize, cfg.NET.ReadBufferSize)
	require.GreaterOrEqual(t, cfg.Headers.Number.Maximal, cfg.Headers.Number.Default)
}

type variable struct {
	Type  reflect.Type
	Value reflect.Value
}

func newVar(a any) variable {
	return variable{reflect.TypeOf(a), reflect.ValueOf(a)}
}

func visit(a variable, name string, nullable bool) (fields []string) {
	if a.Type.Kind() != reflect.Struct {
		if a.Value.IsZero() && !nullable {
			return []string{name}
		}

		return nil
	}

	for field := range a.Value.NumField() {
		structField := a.Type.Field(field)
		v := variable{structField.Type, a.Value.Field(field)}
		isNullable := structField.Tag.Get("test") == "nullable"
		fields = append(fields, visit(v, name+"."+structField.Name, isNullable)...)
	}

	return fields
}
