package shared

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"venue/shared/dto"
	"venue/shared/failure"
)

const cacheKeySeparator = ":"

// TransformFields converts a struct into the column map of a full overwrite.
// Every db-tagged field is included, zero values too; fields tagged
// readonly:"true" (keys, store defaults) are skipped.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	if typ.Kind() == reflect.Pointer {
		val = val.Elem()
		typ = typ.Elem()
	}

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := typ.Field(index)

		fieldName := field.Tag.Get("db")
		if fieldName == "" || fieldName == "-" || field.Tag.Get("readonly") == "true" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	return updatedFields
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByEq is FilterByID for arbitrary column values.
func FilterByEq(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// ParseID reads a positive numeric identifier taken from a path parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid id: %s", value))
	}

	return id, nil
}
