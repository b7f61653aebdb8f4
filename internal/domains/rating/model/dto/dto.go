package dto

import (
	"time"

	"venue/internal/domains/rating/model"
	"venue/shared/timezone"
)

// RateRequest carries a score for the facility in the path. Score is a
// pointer so that 0 passes the required check and only a missing score fails.
type RateRequest struct {
	Username string  `json:"username" validate:"required"`
	Score    *int    `json:"score"    validate:"required"`
	Comment  *string `json:"comment"`
}

func (r *RateRequest) ToModel(userID, facilityID int64, now time.Time) model.Rating {
	rating := model.Rating{
		UserID:     userID,
		FacilityID: facilityID,
		Comment:    r.Comment,
		CreatedAt:  now,
	}

	if r.Score != nil {
		rating.Score = *r.Score
	}

	return rating
}

type UserRatingResponse struct {
	ID           int64   `json:"rating_id"`
	FacilityName string  `json:"facility_name"`
	Score        int     `json:"score"`
	Comment      *string `json:"comment"`
	CreatedAt    *string `json:"created_at"`
}

func FromUserRatings(ratings []model.UserRating) []UserRatingResponse {
	res := make([]UserRatingResponse, len(ratings))
	for i, rating := range ratings {
		res[i] = UserRatingResponse{
			ID:           rating.ID,
			FacilityName: rating.FacilityName,
			Score:        rating.Score,
			Comment:      rating.Comment,
			CreatedAt:    timezone.FormatDateTime(rating.CreatedAt),
		}
	}

	return res
}

type FacilityRatingResponse struct {
	ID        int64   `json:"rating_id"`
	Username  string  `json:"username"`
	Score     int     `json:"score"`
	Comment   *string `json:"comment"`
	CreatedAt *string `json:"created_at"`
}

func FromFacilityRatings(ratings []model.FacilityRating) []FacilityRatingResponse {
	res := make([]FacilityRatingResponse, len(ratings))
	for i, rating := range ratings {
		res[i] = FacilityRatingResponse{
			ID:        rating.ID,
			Username:  rating.Username,
			Score:     rating.Score,
			Comment:   rating.Comment,
			CreatedAt: timezone.FormatDateTime(rating.CreatedAt),
		}
	}

	return res
}

// FacilityRatingsResponse is the rating page of one facility. AverageScore
// is nil while the facility has no ratings.
type FacilityRatingsResponse struct {
	FacilityName string                   `json:"facility_name"`
	AverageScore *float64                 `json:"average_score"`
	Ratings      []FacilityRatingResponse `json:"ratings"`
}
