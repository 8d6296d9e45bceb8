package domain

import (
	"time"
)

// CREATE TABLE public.training_fishing_data (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     spot_name    TEXT NOT NULL,
//     address      TEXT,
//     latitude     DOUBLE PRECISION,
//     longitude    DOUBLE PRECISION,
//     weather      TEXT,
//     time_period  TEXT,
//     bait_type    TEXT,
//     temperature  TEXT,
//     wind         TEXT,
//     result       INTEGER,
//     blog_url     TEXT UNIQUE,
//     posted_at    TIMESTAMPTZ,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

// TrainingRecord is the canonical refined fact the scoring model is trained
// on. SourceURL is the dedup key: a blog URL for scraped records or a
// synthetic app-upload token for user submissions. Updates only ever fill
// fields that are still null, never overwrite present values.
type TrainingRecord struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	SpotName    string     `gorm:"column:spot_name;not null" json:"spot_name"`
	Address     *string    `gorm:"column:address" json:"address"`
	Latitude    *float64   `gorm:"column:latitude" json:"latitude"`
	Longitude   *float64   `gorm:"column:longitude" json:"longitude"`
	Weather     *string    `gorm:"column:weather" json:"weather"`
	TimePeriod  *string    `gorm:"column:time_period" json:"time_period"`
	BaitType    *string    `gorm:"column:bait_type" json:"bait_type"`
	Temperature *string    `gorm:"column:temperature" json:"temperature"`
	Wind        *string    `gorm:"column:wind" json:"wind"`
	Result      int        `gorm:"column:result" json:"result"`
	SourceURL   string     `gorm:"column:blog_url;uniqueIndex" json:"blog_url"`
	PostedAt    *time.Time `gorm:"column:posted_at" json:"posted_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TrainingRecord) TableName() string {
	return "training_fishing_data"
}

// The five canonical time-of-day labels produced by the time-period
// normalizer. Anything else stays null.
const (
	PeriodDawn        = "새벽"
	PeriodMorning     = "아침"
	PeriodLateMorning = "오전"
	PeriodAfternoon   = "오후"
	PeriodNight       = "야간"
)

// Usable reports whether the record can serve as a recommendation candidate.
func (r TrainingRecord) Usable() bool {
	return r.Latitude != nil && r.Longitude != nil && r.Address != nil
}
