// Package stringify renders structured values as indented, human-readable
// text for use in String() methods.
package stringify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kr/text"
)

const indentationSize = 4

// Struct renders a named list of fields as an indented block.
func Struct(name string, fields ...*StructField) string {
	builder := strings.Builder{}
	builder.WriteString(name + " {\n")
	for _, field := range fields {
		builder.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", indentationSize)))
	}
	builder.WriteString("}")

	return builder.String()
}

// StructField is a named value inside a Struct rendering.
type StructField struct {
	name  string
	value interface{}
}

// NewStructField creates a new StructField with the given name and value.
func NewStructField(name string, value interface{}) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (structField *StructField) String() string {
	return structField.name + ": " + Interface(structField.value)
}

// Interface renders an arbitrary value as text.
func Interface(value interface{}) string {
	switch typeCastedValue := value.(type) {
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case string:
		return "\"" + typeCastedValue + "\""
	case int:
		return strconv.Itoa(typeCastedValue)
	case int32:
		return strconv.FormatInt(int64(typeCastedValue), 10)
	case uint32:
		return strconv.FormatUint(uint64(typeCastedValue), 10)
	case float32:
		return strconv.FormatFloat(float64(typeCastedValue), 'g', -1, 32)
	case []byte:
		return fmt.Sprintf("%x", typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	default:
		return fmt.Sprint(value)
	}
}
