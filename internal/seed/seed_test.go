package seed

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"
)

const sampleCatalog = `
hardware:
  - asset_tag: HW-1001
    manufacturer: Lenovo
    model: ThinkPad T14
    serial: PF-3XK21
  - manufacturer: Samsung
    model: S27A800
software:
  - name: 한컴오피스
    version: "2024"
    total_licenses: 20
  - name: Slack
`

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Hardware{}, &models.Software{}))
	return db
}

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	require.Len(t, cat.Hardware, 2)
	assert.Equal(t, "HW-1001", cat.Hardware[0].AssetTag)
	assert.Equal(t, "ThinkPad T14", cat.Hardware[0].Model)

	require.Len(t, cat.Software, 2)
	assert.Equal(t, 20, cat.Software[0].TotalLicenses)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	_, err := Parse([]byte("hardware:\n  - manufacturer: Lenovo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is required")

	_, err = Parse([]byte("software:\n  - version: \"1.0\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = Parse([]byte("software:\n  - name: X\n    total_licenses: -1\n"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	db := testDB(t)

	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	created, err := cat.Apply(db)
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	// Untagged hardware received a generated tag.
	var hw []models.Hardware
	require.NoError(t, db.Order("id asc").Find(&hw).Error)
	require.Len(t, hw, 2)
	assert.Equal(t, "HW-1001", hw[0].AssetTag)
	assert.NotEmpty(t, hw[1].AssetTag)

	// Unset license count defaults to one.
	var slack models.Software
	require.NoError(t, db.Where("name = ?", "Slack").First(&slack).Error)
	assert.Equal(t, 1, slack.TotalLicenses)
}

func TestApplySkipsExisting(t *testing.T) {
	db := testDB(t)

	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	first, err := cat.Apply(db)
	require.NoError(t, err)
	require.Equal(t, 4, first)

	// Re-applying the same catalog only re-creates the untagged
	// hardware (its generated tag is new each run).
	second, err := cat.Apply(db)
	require.NoError(t, err)
	assert.Equal(t, 1, second)

	var swCount int64
	require.NoError(t, db.Model(&models.Software{}).Count(&swCount).Error)
	assert.Equal(t, int64(2), swCount)
}
