package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetType string

const (
	AssetHardware AssetType = "hardware"
	AssetSoftware AssetType = "software"
)

func (t AssetType) Valid() bool {
	return t == AssetHardware || t == AssetSoftware
}

type AssignmentStatus string

const (
	StatusActive   AssignmentStatus = "active"
	StatusReturned AssignmentStatus = "returned"
	StatusPending  AssignmentStatus = "pending"
	StatusOverdue  AssignmentStatus = "overdue"
	StatusLost     AssignmentStatus = "lost"
	StatusDamaged  AssignmentStatus = "damaged"
)

// 화면 표시용 상태 라벨. 비교 로직은 항상 위의 enum 값만 사용한다.
var statusLabels = map[AssignmentStatus]string{
	StatusActive:   "사용중",
	StatusReturned: "반납완료",
	StatusPending:  "대기중",
	StatusOverdue:  "연체",
	StatusLost:     "분실",
	StatusDamaged:  "손상",
}

func (s AssignmentStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s AssignmentStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Assignment — 직원과 자산(하드웨어/소프트웨어)의 할당 관계.
// 자산은 두 테이블에 나뉘어 있으므로 자산의 식별자는 (AssetType, AssetID) 쌍이다.
type Assignment struct {
	gorm.Model
	EmployeeID uint
	Employee   Employee

	AssetType AssetType `gorm:"type:varchar(20);not null;index:idx_assignment_asset"`
	AssetID   uint      `gorm:"not null;index:idx_assignment_asset"`

	RefCode      string `gorm:"size:36;uniqueIndex"` // 할당 참조 코드 (uuid)
	AssignedDate time.Time
	ReturnedDate *time.Time
	Status       AssignmentStatus `gorm:"type:varchar(20);not null;index"`
	Notes        string           `gorm:"type:text"`
}

// IsActive reports whether the assignment counts toward occupancy and limits.
func (a Assignment) IsActive() bool {
	return a.Status == StatusActive
}

// References reports whether the assignment points at the given asset.
func (a Assignment) References(assetType AssetType, assetID uint) bool {
	return a.AssetType == assetType && a.AssetID == assetID
}
