package shared_test

import (
	"net/http"
	"reflect"
	"testing"

	"venue/shared"
	"venue/shared/dto"
	"venue/shared/failure"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID          int64   `db:"id"          readonly:"true"`
		Name        string  `db:"name"`
		Capacity    int     `db:"capacity"`
		Description *string `db:"description"`
		NoDBTag     string
		IgnoredTag  string `db:"-"`
	}

	description := "Indoor court"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:          7,
				Name:        "Court A",
				Capacity:    12,
				Description: &description,
				NoDBTag:     "ignored",
				IgnoredTag:  "ignored",
			},
			expected: map[string]any{
				"name":        "Court A",
				"capacity":    12,
				"description": &description,
			},
		},
		{
			name: "zero values are kept for a full overwrite",
			data: TestStruct{},
			expected: map[string]any{
				"name":        "",
				"capacity":    0,
				"description": (*string)(nil),
			},
		},
		{
			name: "pointer to struct",
			data: &TestStruct{Name: "Pool"},
			expected: map[string]any{
				"name":        "Pool",
				"capacity":    0,
				"description": (*string)(nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      123,
			fieldID: "facility_id",
			table:   "facilities",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "facility_id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "facilities",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      456,
			fieldID: "reservation_id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "reservation_id",
						Value:    int64(456),
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			where, args := result.GetWhereClause()
			if where == "" {
				t.Error("expected a where clause")
			}

			if args[tt.fieldID] != tt.id {
				t.Errorf("expected arg %s to be %d, got %v", tt.fieldID, tt.id, args[tt.fieldID])
			}
		})
	}
}

func TestFilterByEq(t *testing.T) {
	result := shared.FilterByEq("username", "alice", "users")

	where, args := result.GetWhereClause()

	if where != "(users.username = :username)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["username"] != "alice" {
		t.Errorf("expected username arg to be alice, got %v", args["username"])
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "all parts", parts: []string{"limiter", "10.0.0.1", "curl/8.0"}, expected: "limiter:10.0.0.1:curl/8.0"},
		{name: "empty parts skipped", parts: []string{"limiter", "", "curl/8.0"}, expected: "limiter:curl/8.0"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{value: "42", want: 42},
		{value: "0", wantErr: true},
		{value: "-3", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := shared.ParseID(tt.value)
			if tt.wantErr {
				if failure.GetCode(err) != http.StatusBadRequest {
					t.Errorf("expected a bad request for %q, got %v", tt.value, err)
				}

				return
			}

			if err != nil || got != tt.want {
				t.Errorf("expected %d, got %d (%v)", tt.want, got, err)
			}
		})
	}
}
