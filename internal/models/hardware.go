package models

import (
	"time"

	"gorm.io/gorm"
)

type HardwareStatus string

const (
	HardwareNormal  HardwareStatus = "normal"
	HardwareRepair  HardwareStatus = "repair"
	HardwareRetired HardwareStatus = "retired"
)

type Hardware struct {
	gorm.Model
	AssetTag     string `gorm:"size:64;uniqueIndex;not null"` // 자산 관리 번호
	Manufacturer string `gorm:"size:100"`                     // 제조사
	ModelName    string `gorm:"size:100;not null"`            // 모델명
	SerialNumber string `gorm:"size:120"`                     // 시리얼 번호
	PurchaseDate *time.Time
	Status       HardwareStatus `gorm:"type:varchar(20);not null;default:'normal'"`
	Notes        string         `gorm:"type:text"`
}
