package model

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID          = "facility_id"
	FieldName        = "facility_name"
	FieldType        = "facility_type"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldCapacity    = "capacity"
)

type Facility struct {
	ID          int64   `db:"facility_id"   readonly:"true"`
	Name        string  `db:"facility_name"`
	Type        *string `db:"facility_type"`
	Description *string `db:"description"`
	Location    *string `db:"location"`
	Capacity    *int    `db:"capacity"`
}

// ScoredFacility is a facility with its average rating, nil when unrated.
type ScoredFacility struct {
	Facility
	AvgScore *float64 `db:"avg_score"`
}
