package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"venue/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "facility_type", Value: "court", Operator: dto.FilterOperatorEq, Table: "facilities"},
			wantWhere: "facilities.facility_type = :facility_type",
			wantArgs:  map[string]any{"facility_type": "court"},
		},
		{
			name:      "like wraps value",
			filter:    dto.Filter{Field: "location", Value: "pool", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(location) LIKE LOWER(:location)",
			wantArgs:  map[string]any{"location": "%pool%"},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "uid", Field: "user_id", Value: int64(7), Operator: dto.FilterOperatorEq},
			wantWhere: "user_id = :uid",
			wantArgs:  map[string]any{"uid": int64(7)},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "comment", Operator: dto.FilterIsNull},
			wantWhere: "comment IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "comment", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	keyword := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "facility_name", Value: "pool", Operator: dto.FilterOperatorLike},
			dto.Filter{Field: "description", Value: "pool", Operator: dto.FilterOperatorLike},
		},
	}

	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "facility_type", Value: "swimming", Operator: dto.FilterOperatorEq},
			keyword,
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(facility_type = :facility_type AND (LOWER(facility_name) LIKE LOWER(:facility_name) OR LOWER(description) LIKE LOWER(:description)))", where)
	assert.Equal(t, map[string]any{
		"facility_type": "swimming",
		"facility_name": "%pool%",
		"description":   "%pool%",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	empty := dto.FilterGroup{}
	assert.True(t, empty.IsEmpty())

	nested := dto.FilterGroup{Filters: []any{dto.FilterGroup{}}}
	where, args := nested.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
	assert.True(t, nested.IsEmpty())
}

func TestQueryParams_OrderClause(t *testing.T) {
	assert.Equal(t, "", dto.QueryParams{}.OrderClause())
	assert.Equal(t, "ORDER BY reservations.start_time DESC", dto.QueryParams{SortBy: "reservations.start_time", SortDir: dto.SortDirDesc}.OrderClause())
	assert.Equal(t, "ORDER BY score ASC", dto.QueryParams{SortBy: "score", SortDir: "sideways"}.OrderClause())
}
