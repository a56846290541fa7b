// Package seed loads the initial hardware/software catalog from a YAML
// file into the database. Used by the invctl admin command.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/nicolaschoi7042/itNswinventory-sub004/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Catalog struct {
	Hardware []HardwareEntry `yaml:"hardware"`
	Software []SoftwareEntry `yaml:"software"`
}

type HardwareEntry struct {
	AssetTag     string `yaml:"asset_tag"`
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
	Serial       string `yaml:"serial"`
	Notes        string `yaml:"notes"`
}

type SoftwareEntry struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	LicenseKey    string `yaml:"license_key"`
	TotalLicenses int    `yaml:"total_licenses"`
	Notes         string `yaml:"notes"`
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates the raw YAML. Model and name are mandatory; license
// counts must not be negative.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for i, h := range cat.Hardware {
		if strings.TrimSpace(h.Model) == "" {
			return nil, fmt.Errorf("hardware[%d]: model is required", i)
		}
	}
	for i, s := range cat.Software {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("software[%d]: name is required", i)
		}
		if s.TotalLicenses < 0 {
			return nil, fmt.Errorf("software[%d] %s: total_licenses must not be negative", i, s.Name)
		}
	}
	return &cat, nil
}

// Apply inserts catalog entries, skipping hardware tags and
// software name+version pairs that already exist. Hardware entries
// without a tag get a generated one. Returns the number of rows created.
func (c *Catalog) Apply(db *gorm.DB) (int, error) {
	created := 0

	for _, h := range c.Hardware {
		tag := strings.TrimSpace(h.AssetTag)
		if tag == "" {
			tag = "HW-" + uuid.NewString()[:8]
		}

		var count int64
		if err := db.Model(&models.Hardware{}).Where("asset_tag = ?", tag).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		hw := models.Hardware{
			AssetTag:     tag,
			Manufacturer: strings.TrimSpace(h.Manufacturer),
			ModelName:    strings.TrimSpace(h.Model),
			SerialNumber: strings.TrimSpace(h.Serial),
			Status:       models.HardwareNormal,
			Notes:        h.Notes,
		}
		if err := db.Create(&hw).Error; err != nil {
			return created, fmt.Errorf("create hardware %s: %w", tag, err)
		}
		created++
	}

	for _, s := range c.Software {
		name := strings.TrimSpace(s.Name)
		version := strings.TrimSpace(s.Version)

		var count int64
		if err := db.Model(&models.Software{}).
			Where("name = ? AND version = ?", name, version).
			Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}

		total := s.TotalLicenses
		if total == 0 {
			total = 1
		}

		sw := models.Software{
			Name:          name,
			Version:       version,
			LicenseKey:    strings.TrimSpace(s.LicenseKey),
			TotalLicenses: total,
			Notes:         s.Notes,
		}
		if err := db.Create(&sw).Error; err != nil {
			return created, fmt.Errorf("create software %s: %w", name, err)
		}
		created++
	}

	return created, nil
}
