package dto

import (
	"fmt"

	"venue/internal/domains/reservation/model"
	"venue/shared/failure"
	"venue/shared/timezone"
)

type CreateReservationRequest struct {
	Username   string `json:"username"    validate:"required"`
	FacilityID int64  `json:"facility_id" validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
	EndTime    string `json:"end_time"    validate:"required"`
}

// ToModel parses both timestamps in the application timezone.
func (c *CreateReservationRequest) ToModel(userID int64) (model.Reservation, error) {
	start, err := timezone.ParseDateTime(c.StartTime)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString(fmt.Sprintf("invalid start_time: %s", c.StartTime))
	}

	end, err := timezone.ParseDateTime(c.EndTime)
	if err != nil {
		return model.Reservation{}, failure.BadRequestFromString(fmt.Sprintf("invalid end_time: %s", c.EndTime))
	}

	return model.Reservation{
		UserID:     userID,
		FacilityID: c.FacilityID,
		StartTime:  start,
		EndTime:    end,
	}, nil
}

type CancelReservationRequest struct {
	ID int64 `json:"reservation_id" validate:"required"`
}

type ReservationResponse struct {
	ID           int64   `json:"reservation_id"`
	FacilityName string  `json:"facility_name"`
	FacilityType *string `json:"facility_type"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Status       string  `json:"status"`
}

func (r *ReservationResponse) FromModel(detail model.ReservationDetail) {
	r.ID = detail.ID
	r.FacilityName = detail.FacilityName
	r.FacilityType = detail.FacilityType
	r.StartTime = timezone.FormatDateTime(detail.StartTime)
	r.EndTime = timezone.FormatDateTime(detail.EndTime)
	r.Status = detail.Status
}

func FromModels(details []model.ReservationDetail) []ReservationResponse {
	res := make([]ReservationResponse, len(details))
	for i, detail := range details {
		res[i].FromModel(detail)
	}

	return res
}
