package dto

import (
	"venue/internal/domains/facility/model"
	"venue/shared/constant"
	gDto "venue/shared/dto"
)

type CreateFacilityRequest struct {
	Name        string  `json:"facility_name" validate:"required,max=100"`
	Type        *string `json:"facility_type" validate:"omitempty,max=50"`
	Description *string `json:"description"`
	Location    *string `json:"location"      validate:"omitempty,max=255"`
	Capacity    *int    `json:"capacity"`
}

func (c *CreateFacilityRequest) ToModel() model.Facility {
	return model.Facility{
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		Location:    c.Location,
		Capacity:    c.Capacity,
	}
}

// UpdateFacilityRequest overwrites every column of the facility; absent
// fields become null.
type UpdateFacilityRequest struct {
	ID int64 `json:"facility_id" validate:"required"`
	CreateFacilityRequest
}

type DeleteFacilityRequest struct {
	ID int64 `json:"facility_id" validate:"required"`
}

// ListFacilityRequest holds the optional catalog filters.
type ListFacilityRequest struct {
	Type    string
	Keyword string
}

func (l *ListFacilityRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if l.Type != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldType,
			Value:    l.Type,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if l.Keyword != constant.Empty {
		keyword := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

		for _, field := range []string{model.FieldName, model.FieldDescription, model.FieldLocation} {
			keyword.Filters = append(keyword.Filters, gDto.Filter{
				ArgName:  "keyword",
				Field:    field,
				Value:    l.Keyword,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			})
		}

		filter.Filters = append(filter.Filters, keyword)
	}

	return filter
}

type FacilityResponse struct {
	ID          int64   `json:"facility_id"`
	Name        string  `json:"facility_name"`
	Type        *string `json:"facility_type"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
}

func (f *FacilityResponse) FromModel(facility model.Facility) {
	f.ID = facility.ID
	f.Name = facility.Name
	f.Type = facility.Type
	f.Description = facility.Description
	f.Location = facility.Location
	f.Capacity = facility.Capacity
}

func FromModels(facilities []model.Facility) []FacilityResponse {
	res := make([]FacilityResponse, len(facilities))
	for i, facility := range facilities {
		res[i].FromModel(facility)
	}

	return res
}

type RecommendedFacilityResponse struct {
	FacilityResponse
	AvgScore *float64 `json:"avg_score"`
}

func FromScoredModels(facilities []model.ScoredFacility) []RecommendedFacilityResponse {
	res := make([]RecommendedFacilityResponse, len(facilities))
	for i, facility := range facilities {
		res[i].FromModel(facility.Facility)
		res[i].AvgScore = facility.AvgScore
	}

	return res
}
