package conversation

import (
	"fmt"
	"strings"

	"lichess-chat/errors"
)

// FormatTemplate substitutes named placeholders such as "{engine}" in an
// operator-written reply. "{{" and "}}" are literal braces. A conversion or
// format suffix ("{engine!s}", "{version:>8}") is accepted and ignored.
func FormatTemplate(template string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed '{' at %d", errors.ErrTemplateMalformed, i)
			}
			field := template[i+1 : i+1+end]
			name, err := fieldName(field)
			if err != nil {
				return "", err
			}
			value, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: %q", errors.ErrTemplateMissingKey, name)
			}
			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at %d", errors.ErrTemplateMalformed, i)
		default:
			b.WriteByte(template[i])
		}
	}
	return b.String(), nil
}

// fieldName strips the conversion and format spec from a replacement field.
// Positional fields are rejected since replies only get named values.
func fieldName(field string) (string, error) {
	if strings.ContainsRune(field, '{') {
		return "", fmt.Errorf("%w: nested field %q", errors.ErrTemplateMalformed, field)
	}
	name := field
	if idx := strings.IndexAny(name, "!:"); idx >= 0 {
		name = name[:idx]
	}
	if name == "" || strings.Trim(name, "0123456789") == "" {
		return "", fmt.Errorf("%w: positional field %q", errors.ErrTemplateMalformed, field)
	}
	return name, nil
}
