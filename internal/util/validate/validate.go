package validate

import (
	"math"
	"regexp"
	"strings"
	"time"

	"fieldtrack/internal/apperrors"

	"github.com/google/uuid"
)

// Pure field checks used by every workflow before state logic runs.
// Required variants reject absent values; optional variants pass nil
// through untouched but still reject malformed present values.

var uuidPattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`,
)

// RequireUUID accepts only the canonical hyphenated v1-v5 form; the
// alternative encodings uuid.Parse tolerates (braced, URN) are rejected.
func RequireUUID(value string, field string) (uuid.UUID, error) {
	if !uuidPattern.MatchString(strings.ToLower(value)) {
		return uuid.Nil, apperrors.Validation("%s must be a valid UUID", field)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.Validation("%s must be a valid UUID", field)
	}

	return id, nil
}

func RequireString(value *string, field string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", apperrors.Validation("%s is required", field)
	}
	return *value, nil
}

func OptionalString(value *string, field string) (*string, error) {
	return value, nil
}

func RequireNumber(value *float64, field string) (float64, error) {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return 0, apperrors.Validation("%s must be a number", field)
	}
	return *value, nil
}

func OptionalNumber(value *float64, field string) (*float64, error) {
	if value == nil {
		return nil, nil
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return nil, apperrors.Validation("%s must be a number", field)
	}
	return value, nil
}

func RequireEnum[T ~string](value *string, allowed []T, field string) (T, error) {
	if value == nil {
		return "", apperrors.Validation("%s must be one of %s", field, enumList(allowed))
	}

	for _, candidate := range allowed {
		if *value == string(candidate) {
			return candidate, nil
		}
	}

	return "", apperrors.Validation("%s must be one of %s", field, enumList(allowed))
}

func OptionalEnum[T ~string](value *string, allowed []T, field string) (*T, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := RequireEnum(value, allowed, field)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func RequireDate(value *string, field string) (time.Time, error) {
	if value == nil {
		return time.Time{}, apperrors.Validation("%s must be a valid date string", field)
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, *value); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, apperrors.Validation("%s must be a valid date string", field)
}

func OptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	parsed, err := RequireDate(value, field)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

func enumList[T ~string](allowed []T) string {
	names := make([]string, len(allowed))
	for i, value := range allowed {
		names[i] = string(value)
	}
	return strings.Join(names, ", ")
}
