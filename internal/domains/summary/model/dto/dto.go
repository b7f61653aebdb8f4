package dto

import (
	ratingModel "venue/internal/domains/rating/model"
	reservationModel "venue/internal/domains/reservation/model"
)

var statusNames = map[string]string{
	reservationModel.StatusPending:   "Awaiting confirmation",
	reservationModel.StatusConfirmed: "Confirmed",
}

// StatusName translates a reservation status for display, unknown statuses
// pass through unchanged.
func StatusName(status string) string {
	if name, ok := statusNames[status]; ok {
		return name
	}

	return status
}

type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type ScoreBucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

type SummaryResponse struct {
	Users        int           `json:"users"`
	Facilities   int           `json:"facilities"`
	Reservations int           `json:"reservations"`
	StatusData   []StatusSlice `json:"status_data"`
	TrendData    []TrendPoint  `json:"trend_data"`
	ScoreDist    []ScoreBucket `json:"score_dist"`
}

func FromStatusCounts(counts []reservationModel.StatusCount) []StatusSlice {
	res := make([]StatusSlice, len(counts))
	for i, count := range counts {
		res[i] = StatusSlice{Name: StatusName(count.Status), Value: count.Count}
	}

	return res
}

func FromDayCounts(counts []reservationModel.DayCount) []TrendPoint {
	res := make([]TrendPoint, len(counts))
	for i, count := range counts {
		res[i] = TrendPoint{Date: count.Day, Count: count.Count}
	}

	return res
}

func FromScoreCounts(counts []ratingModel.ScoreCount) []ScoreBucket {
	res := make([]ScoreBucket, len(counts))
	for i, count := range counts {
		res[i] = ScoreBucket{Score: count.Score, Count: count.Count}
	}

	return res
}
