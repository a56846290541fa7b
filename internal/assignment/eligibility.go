// Package assignment implements the eligibility rules for binding an
// employee to a hardware or software asset. Validation is a pure
// computation over an in-memory snapshot of assignments: no I/O, no
// mutation of inputs. The write path calls it before persisting; the
// console form calls it through an advisory endpoint on every selection
// change. Staleness of the snapshot is the caller's concern.
package assignment

import (
	"fmt"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"
)

// DefaultMaxAssignments — 직원 1인당 기본 할당 한도.
const DefaultMaxAssignments = 5

// licenseWarnRatio is the utilization at which a license warning is raised.
const licenseWarnRatio = 0.8

type IssueType string

const (
	IssueAssetAvailability IssueType = "asset_availability"
	IssueEmployeeLimit     IssueType = "employee_limit"
	IssueSoftwareLicense   IssueType = "software_license"
	IssueConflict          IssueType = "conflict"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// SoftwareData carries the license capacity of the software asset under
// validation. When absent, the license check is skipped and availability
// falls back to treating the software as single-seat.
type SoftwareData struct {
	TotalLicenses   int `json:"total_licenses"`
	MaxLicenses     int `json:"max_licenses"`
	ConcurrentUsers int `json:"concurrent_users"`
}

// Capacity resolves the effective license limit: MaxLicenses wins over
// TotalLicenses; an unset capacity counts as a single license.
func (s SoftwareData) Capacity() int {
	if s.MaxLicenses > 0 {
		return s.MaxLicenses
	}
	if s.TotalLicenses > 0 {
		return s.TotalLicenses
	}
	return 1
}

type Options struct {
	// MaxEmployeeAssignments limits active assignments per employee.
	// Zero means DefaultMaxAssignments.
	MaxEmployeeAssignments int

	// Software supplies license capacity for software assets. Required
	// for multi-seat licensing; without it any active assignment on the
	// asset blocks.
	Software *SoftwareData

	// ExcludeAssignmentID removes one record from every check, so that
	// editing an existing assignment does not conflict with itself.
	ExcludeAssignmentID uint
}

// Request identifies the proposed assignment. Assets live in separate
// hardware/software tables, so the asset is identified by the
// (AssetType, AssetID) pair.
type Request struct {
	EmployeeID uint
	AssetID    uint
	AssetType  models.AssetType
}

// Details is the per-issue payload. Each issue type carries its own
// variant; see AvailabilityDetails, LimitDetails, LicenseDetails and
// ConflictDetails.
type Details interface {
	isDetails()
}

// AvailabilityDetails lists the active assignments occupying the asset.
type AvailabilityDetails struct {
	Assignments []models.Assignment `json:"assignments"`
}

// LimitDetails reports the employee's current active load.
type LimitDetails struct {
	Count       int                 `json:"count"`
	Max         int                 `json:"max"`
	Assignments []models.Assignment `json:"assignments"`
}

// LicenseDetails reports software seat usage.
type LicenseDetails struct {
	Used        int     `json:"used"`
	Capacity    int     `json:"capacity"`
	Utilization float64 `json:"utilization"` // percent
}

// ConflictDetails lists assignments where the same employee already
// holds the same asset.
type ConflictDetails struct {
	Assignments []models.Assignment `json:"assignments"`
}

func (AvailabilityDetails) isDetails() {}
func (LimitDetails) isDetails()        {}
func (LicenseDetails) isDetails()      {}
func (ConflictDetails) isDetails()     {}

type Issue struct {
	Type     IssueType `json:"type"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Details  Details   `json:"details,omitempty"`
}

// Result is recomputed on every call and never persisted. Eligible is
// true exactly when no issue has SeverityError.
type Result struct {
	Eligible        bool     `json:"is_eligible"`
	Issues          []Issue  `json:"issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Validate runs the four eligibility checks in fixed order and collects
// every applicable issue, so the caller sees all blocking reasons at
// once. Unknown employee or asset ids simply match nothing and come back
// eligible; existence is checked elsewhere.
func Validate(req Request, all []models.Assignment, opts Options) Result {
	maxPerEmployee := opts.MaxEmployeeAssignments
	if maxPerEmployee <= 0 {
		maxPerEmployee = DefaultMaxAssignments
	}

	// Snapshot of active assignments, minus the one being edited.
	active := make([]models.Assignment, 0, len(all))
	for _, a := range all {
		if opts.ExcludeAssignmentID != 0 && a.ID == opts.ExcludeAssignmentID {
			continue
		}
		if a.IsActive() {
			active = append(active, a)
		}
	}

	res := Result{
		Issues:          []Issue{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	res.checkAvailability(req, active, opts.Software)
	res.checkEmployeeLimit(req, active, maxPerEmployee)
	res.checkLicense(req, active, opts.Software)
	res.checkConflict(req, active)

	res.Eligible = true
	for _, issue := range res.Issues {
		if issue.Severity == SeverityError {
			res.Eligible = false
			break
		}
	}

	res.recommend()
	return res
}

// checkAvailability blocks when the asset is already occupied. Hardware
// is strictly single-occupancy. For software the seat count is the
// license check's job; only when no license data was supplied does this
// check fall back to single-seat blocking.
func (r *Result) checkAvailability(req Request, active []models.Assignment, sw *SoftwareData) {
	if req.AssetType == models.AssetSoftware && sw != nil {
		return
	}

	var holders []models.Assignment
	for _, a := range active {
		if a.References(req.AssetType, req.AssetID) {
			holders = append(holders, a)
		}
	}
	if len(holders) == 0 {
		return
	}

	msg := fmt.Sprintf("이미 다른 할당에서 사용 중인 자산입니다 (사용 %d건)", len(holders))
	if req.AssetType == models.AssetSoftware {
		msg = "라이선스 정보가 없어 사용 중인 소프트웨어로 처리합니다"
	}
	r.Issues = append(r.Issues, Issue{
		Type:     IssueAssetAvailability,
		Severity: SeverityError,
		Message:  msg,
		Details:  AvailabilityDetails{Assignments: holders},
	})
}

// checkEmployeeLimit blocks at the limit and warns one slot before it.
func (r *Result) checkEmployeeLimit(req Request, active []models.Assignment, max int) {
	var held []models.Assignment
	for _, a := range active {
		if a.EmployeeID == req.EmployeeID {
			held = append(held, a)
		}
	}

	count := len(held)
	switch {
	case count >= max:
		r.Issues = append(r.Issues, Issue{
			Type:     IssueEmployeeLimit,
			Severity: SeverityError,
			Message:  fmt.Sprintf("직원별 할당 한도를 초과합니다 (현재 %d건 / 최대 %d건)", count, max),
			Details:  LimitDetails{Count: count, Max: max, Assignments: held},
		})
	case count == max-1:
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("이번 할당으로 직원별 한도에 도달합니다 (%d/%d)", count+1, max))
	}
}

// checkLicense applies seat accounting for software assets. Skipped
// silently when no SoftwareData was supplied.
func (r *Result) checkLicense(req Request, active []models.Assignment, sw *SoftwareData) {
	if req.AssetType != models.AssetSoftware || sw == nil {
		return
	}

	used := 0
	for _, a := range active {
		if a.References(models.AssetSoftware, req.AssetID) {
			used++
		}
	}

	capacity := sw.Capacity()
	utilization := float64(used) / float64(capacity) * 100

	if used >= capacity {
		r.Issues = append(r.Issues, Issue{
			Type:     IssueSoftwareLicense,
			Severity: SeverityError,
			Message:  fmt.Sprintf("소프트웨어 라이선스가 모두 사용 중입니다 (%d/%d)", used, capacity),
			Details:  LicenseDetails{Used: used, Capacity: capacity, Utilization: utilization},
		})
		return
	}

	if float64(used)/float64(capacity) >= licenseWarnRatio {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("라이선스 사용률이 %.0f%%입니다 (%d/%d)", utilization, used, capacity))
	}
}

// checkConflict catches the same employee already holding the same
// asset, independent of who else holds it.
func (r *Result) checkConflict(req Request, active []models.Assignment) {
	var dup []models.Assignment
	for _, a := range active {
		if a.EmployeeID == req.EmployeeID && a.References(req.AssetType, req.AssetID) {
			dup = append(dup, a)
		}
	}
	if len(dup) == 0 {
		return
	}

	r.Issues = append(r.Issues, Issue{
		Type:     IssueConflict,
		Severity: SeverityError,
		Message:  "해당 직원에게 이미 동일한 자산이 할당되어 있습니다",
		Details:  ConflictDetails{Assignments: dup},
	})
}

var recommendations = map[IssueType]string{
	IssueAssetAvailability: "자산이 반납될 때까지 기다리거나 다른 자산을 선택하세요",
	IssueEmployeeLimit:     "기존 할당을 반납 처리하거나 할당 한도 상향을 요청하세요",
	IssueSoftwareLicense:   "라이선스 추가 구매를 검토하거나 미사용 라이선스를 회수하세요",
	IssueConflict:          "기존 할당 내역을 수정하려면 해당 할당을 편집하세요",
}

// recommend appends one corrective line per distinct issue type, in the
// order issues were raised, or a confirmation when the result is clean.
func (r *Result) recommend() {
	if len(r.Issues) == 0 {
		r.Recommendations = append(r.Recommendations, "할당 가능한 상태입니다")
		return
	}

	seen := map[IssueType]bool{}
	for _, issue := range r.Issues {
		if seen[issue.Type] {
			continue
		}
		seen[issue.Type] = true
		if rec, ok := recommendations[issue.Type]; ok {
			r.Recommendations = append(r.Recommendations, rec)
		}
	}
}
