package model

import (
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "reservation_id"
	FieldUserID     = "user_id"
	FieldFacilityID = "facility_id"
	FieldStartTime  = "start_time"
	FieldStatus     = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// Reservation is the stored row. Status is left to the column default.
type Reservation struct {
	ID         int64     `db:"reservation_id" readonly:"true"`
	UserID     int64     `db:"user_id"`
	FacilityID int64     `db:"facility_id"`
	StartTime  time.Time `db:"start_time"`
	EndTime    time.Time `db:"end_time"`
	Status     string    `db:"status"         readonly:"true"`
}

// ReservationDetail is a reservation joined with its facility.
type ReservationDetail struct {
	ID           int64      `db:"reservation_id"`
	UserID       int64      `db:"user_id"`
	FacilityName string     `db:"facility_name"  table:"facilities"`
	FacilityType *string    `db:"facility_type"  table:"facilities"`
	StartTime    *time.Time `db:"start_time"`
	EndTime      *time.Time `db:"end_time"`
	Status       string     `db:"status"`
}

func (ReservationDetail) GetJoinQuery() string {
	return "JOIN facilities ON reservations.facility_id = facilities.facility_id"
}

type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

type DayCount struct {
	Day   string `db:"day"`
	Count int    `db:"count"`
}
