package assignment

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"
)

func mkAssignment(id, employeeID uint, assetType models.AssetType, assetID uint, status models.AssignmentStatus) models.Assignment {
	return models.Assignment{
		Model:      gorm.Model{ID: id},
		EmployeeID: employeeID,
		AssetType:  assetType,
		AssetID:    assetID,
		Status:     status,
	}
}

func issueTypes(res Result) []IssueType {
	types := make([]IssueType, 0, len(res.Issues))
	for _, issue := range res.Issues {
		types = append(types, issue.Type)
	}
	return types
}

func TestValidateEmptySnapshot(t *testing.T) {
	res := Validate(Request{EmployeeID: 1, AssetID: 1, AssetType: models.AssetHardware}, nil, Options{})

	assert.True(t, res.Eligible)
	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Recommendations, 1)
}

func TestValidateHardwareOccupied(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
	}

	// Another employee asking for the same hardware is blocked.
	res := Validate(Request{EmployeeID: 20, AssetID: 100, AssetType: models.AssetHardware}, all, Options{})

	require.False(t, res.Eligible)
	require.Len(t, res.Issues, 1)
	issue := res.Issues[0]
	assert.Equal(t, IssueAssetAvailability, issue.Type)
	assert.Equal(t, SeverityError, issue.Severity)

	details, ok := issue.Details.(AvailabilityDetails)
	require.True(t, ok)
	require.Len(t, details.Assignments, 1)
	assert.Equal(t, uint(10), details.Assignments[0].EmployeeID)
}

func TestValidateReturnedAssignmentsDoNotBlock(t *testing.T) {
	for _, status := range []models.AssignmentStatus{
		models.StatusReturned, models.StatusLost, models.StatusDamaged, models.StatusPending, models.StatusOverdue,
	} {
		all := []models.Assignment{
			mkAssignment(1, 10, models.AssetHardware, 100, status),
		}
		res := Validate(Request{EmployeeID: 20, AssetID: 100, AssetType: models.AssetHardware}, all, Options{})
		assert.True(t, res.Eligible, "status %s must not occupy the asset", status)
	}
}

func TestValidateOtherHardwareDoesNotBlock(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
	}
	res := Validate(Request{EmployeeID: 20, AssetID: 101, AssetType: models.AssetHardware}, all, Options{})
	assert.True(t, res.Eligible)
}

func TestValidateEmployeeLimit(t *testing.T) {
	limit := func(n int, employeeID uint) []models.Assignment {
		all := make([]models.Assignment, 0, n)
		for i := 0; i < n; i++ {
			all = append(all, mkAssignment(uint(i+1), employeeID, models.AssetHardware, uint(200+i), models.StatusActive))
		}
		return all
	}

	t.Run("at limit blocks", func(t *testing.T) {
		all := limit(5, 10)
		res := Validate(Request{EmployeeID: 10, AssetID: 999, AssetType: models.AssetHardware}, all, Options{})

		require.False(t, res.Eligible)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, IssueEmployeeLimit, res.Issues[0].Type)

		details, ok := res.Issues[0].Details.(LimitDetails)
		require.True(t, ok)
		assert.Equal(t, 5, details.Count)
		assert.Equal(t, 5, details.Max)
		assert.Len(t, details.Assignments, 5)
	})

	t.Run("one below limit warns but passes", func(t *testing.T) {
		all := limit(4, 10)
		res := Validate(Request{EmployeeID: 10, AssetID: 999, AssetType: models.AssetHardware}, all, Options{})

		assert.True(t, res.Eligible)
		assert.Empty(t, res.Issues)
		require.Len(t, res.Warnings, 1)
	})

	t.Run("custom limit", func(t *testing.T) {
		all := limit(2, 10)
		res := Validate(Request{EmployeeID: 10, AssetID: 999, AssetType: models.AssetHardware}, all,
			Options{MaxEmployeeAssignments: 2})
		require.False(t, res.Eligible)
		assert.Equal(t, IssueEmployeeLimit, res.Issues[0].Type)
	})

	t.Run("other employees do not count", func(t *testing.T) {
		all := limit(5, 77)
		res := Validate(Request{EmployeeID: 10, AssetID: 999, AssetType: models.AssetHardware}, all, Options{})
		assert.True(t, res.Eligible)
	})
}

func TestValidateSoftwareLicense(t *testing.T) {
	seats := func(n int, assetID uint) []models.Assignment {
		all := make([]models.Assignment, 0, n)
		for i := 0; i < n; i++ {
			all = append(all, mkAssignment(uint(i+1), uint(50+i), models.AssetSoftware, assetID, models.StatusActive))
		}
		return all
	}

	t.Run("free seats pass", func(t *testing.T) {
		all := seats(2, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all,
			Options{Software: &SoftwareData{TotalLicenses: 10}})

		assert.True(t, res.Eligible)
		assert.Empty(t, res.Issues)
	})

	t.Run("exhausted blocks", func(t *testing.T) {
		all := seats(3, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all,
			Options{Software: &SoftwareData{MaxLicenses: 3}})

		require.False(t, res.Eligible)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, IssueSoftwareLicense, res.Issues[0].Type)

		details, ok := res.Issues[0].Details.(LicenseDetails)
		require.True(t, ok)
		assert.Equal(t, 3, details.Used)
		assert.Equal(t, 3, details.Capacity)
		assert.InDelta(t, 100, details.Utilization, 0.01)
	})

	t.Run("max licenses wins over total", func(t *testing.T) {
		all := seats(2, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all,
			Options{Software: &SoftwareData{TotalLicenses: 10, MaxLicenses: 2}})
		require.False(t, res.Eligible)
		assert.Equal(t, IssueSoftwareLicense, res.Issues[0].Type)
	})

	t.Run("high utilization warns", func(t *testing.T) {
		all := seats(4, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all,
			Options{Software: &SoftwareData{TotalLicenses: 5}})

		assert.True(t, res.Eligible)
		assert.Empty(t, res.Issues)
		require.Len(t, res.Warnings, 1)
		assert.Contains(t, res.Warnings[0], "80")
	})

	t.Run("no license data falls back to single seat", func(t *testing.T) {
		all := seats(1, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all, Options{})

		require.False(t, res.Eligible)
		require.Len(t, res.Issues, 1)
		assert.Equal(t, IssueAssetAvailability, res.Issues[0].Type)
	})

	t.Run("unset capacity counts as one", func(t *testing.T) {
		all := seats(1, 300)
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, all,
			Options{Software: &SoftwareData{}})
		require.False(t, res.Eligible)
		assert.Equal(t, IssueSoftwareLicense, res.Issues[0].Type)
	})
}

func TestValidateConflict(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(7, 10, models.AssetHardware, 100, models.StatusActive),
	}

	t.Run("same employee same asset", func(t *testing.T) {
		res := Validate(Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}, all, Options{})

		require.False(t, res.Eligible)
		assert.Contains(t, issueTypes(res), IssueConflict)
		// The occupancy check fires too; both reasons are reported.
		assert.Contains(t, issueTypes(res), IssueAssetAvailability)
	})

	t.Run("self exclusion clears the conflict", func(t *testing.T) {
		res := Validate(Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}, all,
			Options{ExcludeAssignmentID: 7})

		assert.True(t, res.Eligible)
		assert.Empty(t, res.Issues)
	})

	t.Run("software conflict reported with license data present", func(t *testing.T) {
		swAll := []models.Assignment{
			mkAssignment(8, 10, models.AssetSoftware, 300, models.StatusActive),
		}
		res := Validate(Request{EmployeeID: 10, AssetID: 300, AssetType: models.AssetSoftware}, swAll,
			Options{Software: &SoftwareData{TotalLicenses: 10}})

		require.False(t, res.Eligible)
		assert.Equal(t, []IssueType{IssueConflict}, issueTypes(res))
	})
}

func TestValidateCollectsAllIssues(t *testing.T) {
	// Employee 10 is at the limit AND already holds the requested asset.
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(2, 10, models.AssetHardware, 101, models.StatusActive),
		mkAssignment(3, 10, models.AssetHardware, 102, models.StatusActive),
		mkAssignment(4, 10, models.AssetHardware, 103, models.StatusActive),
		mkAssignment(5, 10, models.AssetHardware, 104, models.StatusActive),
	}
	res := Validate(Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}, all, Options{})

	require.False(t, res.Eligible)
	types := issueTypes(res)
	assert.Contains(t, types, IssueAssetAvailability)
	assert.Contains(t, types, IssueEmployeeLimit)
	assert.Contains(t, types, IssueConflict)
	// One recommendation per distinct issue type.
	assert.Len(t, res.Recommendations, 3)
}

func TestValidateRecommendationsOnCleanResult(t *testing.T) {
	res := Validate(Request{EmployeeID: 1, AssetID: 2, AssetType: models.AssetHardware}, nil, Options{})
	require.Len(t, res.Recommendations, 1)
	assert.Empty(t, res.Warnings)
}

func TestValidateIdempotent(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(2, 11, models.AssetSoftware, 300, models.StatusActive),
	}
	req := Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}

	first := Validate(req, all, Options{})
	second := Validate(req, all, Options{})
	assert.Equal(t, first, second)
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(2, 11, models.AssetHardware, 101, models.StatusReturned),
	}
	before, err := json.Marshal(all)
	require.NoError(t, err)

	Validate(Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}, all, Options{})

	after, err := json.Marshal(all)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestValidateOrderInsensitive(t *testing.T) {
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(2, 10, models.AssetHardware, 101, models.StatusActive),
		mkAssignment(3, 10, models.AssetHardware, 102, models.StatusActive),
		mkAssignment(4, 10, models.AssetHardware, 103, models.StatusActive),
		mkAssignment(5, 20, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(6, 30, models.AssetSoftware, 300, models.StatusReturned),
	}
	req := Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}

	base := Validate(req, all, Options{})
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]models.Assignment, len(all))
		copy(shuffled, all)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		res := Validate(req, shuffled, Options{})
		assert.Equal(t, base.Eligible, res.Eligible)
		assert.ElementsMatch(t, issueTypes(base), issueTypes(res))
		assert.Equal(t, len(base.Warnings), len(res.Warnings))
	}
}

func TestValidateExcludeAppliesEverywhere(t *testing.T) {
	// Employee at the limit, one of those records is the one being edited.
	all := []models.Assignment{
		mkAssignment(1, 10, models.AssetHardware, 100, models.StatusActive),
		mkAssignment(2, 10, models.AssetHardware, 101, models.StatusActive),
		mkAssignment(3, 10, models.AssetHardware, 102, models.StatusActive),
		mkAssignment(4, 10, models.AssetHardware, 103, models.StatusActive),
		mkAssignment(5, 10, models.AssetHardware, 104, models.StatusActive),
	}
	res := Validate(Request{EmployeeID: 10, AssetID: 100, AssetType: models.AssetHardware}, all,
		Options{ExcludeAssignmentID: 1})

	// 4 remaining: below the limit, asset 100 freed, no conflict. Near-limit
	// warning still applies.
	assert.True(t, res.Eligible)
	assert.Empty(t, res.Issues)
	assert.Len(t, res.Warnings, 1)
}
