package model

import (
	"time"
)

const (
	TableName  = "ratings"
	EntityName = "rating"

	FieldID         = "rating_id"
	FieldUserID     = "user_id"
	FieldFacilityID = "facility_id"
	FieldCreatedAt  = "created_at"
)

type Rating struct {
	ID         int64     `db:"rating_id"   readonly:"true"`
	UserID     int64     `db:"user_id"`
	FacilityID int64     `db:"facility_id"`
	Score      int       `db:"score"`
	Comment    *string   `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
}

// UserRating is a rating as its author sees it, labelled with the facility.
type UserRating struct {
	ID           int64      `db:"rating_id"`
	FacilityName string     `db:"facility_name" table:"facilities"`
	Score        int        `db:"score"`
	Comment      *string    `db:"comment"`
	CreatedAt    *time.Time `db:"created_at"`
}

func (UserRating) GetJoinQuery() string {
	return "JOIN facilities ON ratings.facility_id = facilities.facility_id"
}

// FacilityRating is a rating as listed on a facility, labelled with the rater.
type FacilityRating struct {
	ID        int64      `db:"rating_id"`
	Username  string     `db:"username"    table:"users"`
	Score     int        `db:"score"`
	Comment   *string    `db:"comment"`
	CreatedAt *time.Time `db:"created_at"`
}

func (FacilityRating) GetJoinQuery() string {
	return "JOIN users ON ratings.user_id = users.user_id"
}

type ScoreCount struct {
	Score int `db:"score"`
	Count int `db:"count"`
}
