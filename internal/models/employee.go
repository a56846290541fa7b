package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	Name       string `gorm:"size:100;not null"` // 이름
	Department string `gorm:"size:100;index"`    // 부서
	Position   string `gorm:"size:100"`          // 직급
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:50"`
	HireDate   *time.Time
	IsActive   bool `gorm:"default:true"` // 재직 여부

	Assignments []Assignment
}
