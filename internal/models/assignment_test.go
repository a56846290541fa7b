package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabels(t *testing.T) {
	// Every enum value has a display label, and comparisons never depend
	// on the label text.
	for _, s := range []AssignmentStatus{
		StatusActive, StatusReturned, StatusPending, StatusOverdue, StatusLost, StatusDamaged,
	} {
		assert.True(t, s.Valid())
		assert.NotEqual(t, string(s), s.Label(), "label for %s must be the display string", s)
	}

	assert.Equal(t, "사용중", StatusActive.Label())
	assert.False(t, AssignmentStatus("사용중").Valid(), "display strings are not valid stored values")

	// Unknown values fall back to themselves rather than panicking.
	assert.Equal(t, "archived", AssignmentStatus("archived").Label())
}

func TestAssetTypeValid(t *testing.T) {
	assert.True(t, AssetHardware.Valid())
	assert.True(t, AssetSoftware.Valid())
	assert.False(t, AssetType("printer").Valid())
}

func TestAssignmentHelpers(t *testing.T) {
	a := Assignment{EmployeeID: 1, AssetType: AssetHardware, AssetID: 7, Status: StatusActive}

	assert.True(t, a.IsActive())
	assert.True(t, a.References(AssetHardware, 7))
	assert.False(t, a.References(AssetSoftware, 7), "asset identity is the (type, id) pair")

	a.Status = StatusReturned
	assert.False(t, a.IsActive())
}
