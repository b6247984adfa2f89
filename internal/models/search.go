package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Search is one persisted price estimate. Rows are immutable once
// created; they only ever disappear when their owner is deleted.
type Search struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // foreign key
	User             User      `json:"-" gorm:"foreignKey:UserID"`
	State            string    `json:"state"`
	City             string    `json:"city"`
	Sqft             float64   `json:"sqft"`
	MainRoadDistance float64   `json:"mainRoadDistance"` // km
	SoilType         string    `json:"soilType"`
	WaterLevel       float64   `json:"waterLevel"` // metres below ground
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	PredictedPrice   float64   `json:"predictedPrice"`
	PricePerSqft     int       `json:"pricePerSqft"`
	CreatedAt        time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (s *Search) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
