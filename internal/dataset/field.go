package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidField is matched by every *InvalidFieldError.
var ErrInvalidField = errors.New("invalid field selection")

// InvalidFieldError reports a field name that is not one of the numeric fields.
type InvalidFieldError struct {
	Input string
}

func (e *InvalidFieldError) Error() string {
	names := make([]string, 0, NumFields)
	for _, f := range Fields() {
		names = append(names, f.Column())
	}
	return fmt.Sprintf("invalid field %q (use one of: %s)", e.Input, strings.Join(names, ", "))
}

func (e *InvalidFieldError) Is(target error) bool { return target == ErrInvalidField }

// ParseField resolves user input to a Field. It accepts the canonical column
// name, the name without the "_cm" suffix, the spaced label ("Sepal Length")
// and the 1-based menu index.
func ParseField(s string) (Field, error) {
	key := normalizeFieldKey(s)
	if key == "" {
		return 0, &InvalidFieldError{Input: s}
	}
	if i, err := strconv.Atoi(key); err == nil {
		if i >= 1 && i <= NumFields {
			return Field(i - 1), nil
		}
		return 0, &InvalidFieldError{Input: s}
	}
	for _, f := range Fields() {
		col := f.Column()
		if key == col || key == strings.TrimSuffix(col, "_cm") {
			return f, nil
		}
	}
	return 0, &InvalidFieldError{Input: s}
}

// ParsePair resolves two field names and rejects identical selections.
func ParsePair(x, y string) (Field, Field, error) {
	fx, err := ParseField(x)
	if err != nil {
		return 0, 0, err
	}
	fy, err := ParseField(y)
	if err != nil {
		return 0, 0, err
	}
	if fx == fy {
		return 0, 0, fmt.Errorf("x and y must be different fields, both are %s", fx.Column())
	}
	return fx, fy, nil
}

func normalizeFieldKey(s string) string {
	k := strings.ToLower(strings.TrimSpace(s))
	k = strings.TrimSuffix(k, "(cm)")
	k = strings.TrimSpace(k)
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	for strings.Contains(k, "__") {
		k = strings.ReplaceAll(k, "__", "_")
	}
	return strings.Trim(k, "_")
}
