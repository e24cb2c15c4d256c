package blog

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"column:title;not null"`
	PublishedAt time.Time `gorm:"column:published_at;type:date;not null;index"`
	RevisedAt   time.Time `gorm:"column:revised_at;type:date;not null"`
	Body        string    `gorm:"column:body;type:text;not null"`
	BannerPath  string    `gorm:"column:banner_path;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Blog) TableName() string {
	return "blogs"
}
