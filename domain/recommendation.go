package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RecommendationRequest carries the requester's position and fishing context.
// Request-scoped only, never persisted.
type RecommendationRequest struct {
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Weather       string   `json:"weather"`
	Temperature   *float64 `json:"temperature"`
	Wind          *float64 `json:"wind"`
	Season        string   `json:"season"`
	TimeOfDay     string   `json:"time_of_day"`
	MaxDistanceKm float64  `json:"max_distance_km"`
}

// RecommendationResult is one recommended spot. Score is the raw model
// prediction; FinalScore is the ranking score after adjustment (currently
// identical — distance is returned but deliberately not ranked on).
type RecommendationResult struct {
	SpotName   string  `json:"spot_name"`
	Address    string  `json:"address"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Score      float64 `json:"score"`
	FinalScore float64 `json:"final_score"`
}

// RecommendationLog is a best-effort audit row for every served
// recommendation, for offline analysis of what was suggested and why.
type RecommendationLog struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	SpotName  string            `gorm:"column:spot_name" json:"spot_name"`
	Score     float64           `gorm:"column:score" json:"score"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationLog) TableName() string {
	return "recommendation_logs"
}
