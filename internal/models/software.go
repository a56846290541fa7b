package models

import (
	"time"

	"gorm.io/gorm"
)

type Software struct {
	gorm.Model
	Name          string `gorm:"size:150;not null"` // 소프트웨어명
	Version       string `gorm:"size:50"`
	LicenseKey    string `gorm:"size:255"`
	TotalLicenses int    `gorm:"not null;default:1"` // 보유 라이선스 수
	ExpiryDate    *time.Time
	Notes         string `gorm:"type:text"`
}
