package domain

import (
	"time"
)

// FishingCatch is a raw catch report before refinement: either a scraped blog
// post summary or a catch submitted from the mobile app. Free-text fields are
// kept as-is; the ingestion pipeline normalizes them into TrainingRecord.
type FishingCatch struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SpotName    string     `gorm:"column:spot_name" json:"spot_name"`
	BlogTitle   string     `gorm:"column:blog_title" json:"blog_title"`
	SourceURL   string     `gorm:"column:blog_url;uniqueIndex" json:"blog_url"`
	Summary     string     `gorm:"column:summary;type:text" json:"summary"`
	PostedAt    *time.Time `gorm:"column:posted_at" json:"posted_at"`
	Weather     *string    `gorm:"column:weather" json:"weather"`
	TimePeriod  *string    `gorm:"column:time_period" json:"time_period"`
	BaitType    *string    `gorm:"column:bait_type" json:"bait_type"`
	Temperature *string    `gorm:"column:temperature" json:"temperature"`
	Wind        *string    `gorm:"column:wind" json:"wind"`
	Result      int        `gorm:"column:result" json:"result"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FishingCatch) TableName() string {
	return "fishing_catches"
}
