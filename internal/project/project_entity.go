package project

import (
	"time"

	"github.com/indocarisinternational/admin-caris/internal/client"

	"github.com/google/uuid"
)

type Project struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string         `gorm:"column:name;not null"`
	ClientID          uuid.UUID      `gorm:"column:client_id;type:uuid;not null;index"`
	Client            *client.Client `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Type              string         `gorm:"column:type;not null"`
	CompletedFeatures int            `gorm:"column:completed_features;not null;default:0"`
	TotalFeatures     int            `gorm:"column:total_features;not null;default:0"`
	StartedAt         time.Time      `gorm:"column:started_at;type:date;not null"`
	Deadline          time.Time      `gorm:"column:deadline;type:date;not null"`
	Status            Status         `gorm:"column:status;not null"`
	Description       string         `gorm:"column:description;type:text;not null"`
	ImagePath         string         `gorm:"column:image_path;not null"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
