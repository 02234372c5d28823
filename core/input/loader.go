// Package input loads organization profiles from files.
// It is the CLI-side input collection surface: it parses the document,
// applies input-surface defaults, and hands a well-formed profile to the
// calculator. It performs no ROI logic.
package input

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"roicheck/core/roi"
	"roicheck/core/types"
	"roicheck/internal/errors"
)

// profileDoc is the on-disk profile schema. Optional money fields are
// pointers so an absent value can fall back to the assumption defaults.
type profileDoc struct {
	Staff           int      `hcl:"staff" json:"staff"`
	ITStaff         int      `hcl:"it_staff,optional" json:"it_staff"`
	Maturity        string   `hcl:"maturity" json:"maturity"`
	HIPAARequired   bool     `hcl:"hipaa_required,optional" json:"hipaa_required"`
	HourlyLaborCost *float64 `hcl:"hourly_labor_cost,optional" json:"hourly_labor_cost"`
	DeviceCount     int      `hcl:"device_count,optional" json:"device_count"`
	LossPerIncident *float64 `hcl:"loss_per_incident,optional" json:"loss_per_incident"`
}

// LoadProfile reads a .hcl or .json profile document from disk.
func LoadProfile(path string, defaults roi.Assumptions) (types.OrganizationProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.OrganizationProfile{}, errors.Wrap(errors.TypeInput, "reading profile file", err)
	}
	return ParseProfile(path, data, defaults)
}

// ParseProfile parses profile document bytes. The filename picks the
// syntax: .hcl is parsed as HCL, .json as JSON.
func ParseProfile(filename string, data []byte, defaults roi.Assumptions) (types.OrganizationProfile, error) {
	var doc profileDoc

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".hcl":
		if err := hclsimple.Decode(filename, data, nil, &doc); err != nil {
			return types.OrganizationProfile{}, errors.Wrap(errors.TypeInput, "parsing HCL profile", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return types.OrganizationProfile{}, errors.Wrap(errors.TypeInput, "parsing JSON profile", err)
		}
	default:
		return types.OrganizationProfile{}, errors.Inputf("unsupported profile format: %s (want .hcl or .json)", filepath.Ext(filename))
	}

	return doc.toProfile(defaults)
}

func (d *profileDoc) toProfile(defaults roi.Assumptions) (types.OrganizationProfile, error) {
	maturity, err := types.ParseMaturityLevel(d.Maturity)
	if err != nil {
		return types.OrganizationProfile{}, errors.Wrap(errors.TypeInput, "invalid profile", err)
	}

	hourly := defaults.DefaultHourlyLaborCost
	if d.HourlyLaborCost != nil {
		hourly = decimal.NewFromFloat(*d.HourlyLaborCost)
	}

	loss := defaults.DefaultLossPerIncident
	if d.LossPerIncident != nil {
		loss = decimal.NewFromFloat(*d.LossPerIncident)
	}

	return types.OrganizationProfile{
		Staff:           d.Staff,
		ITStaff:         d.ITStaff,
		Maturity:        maturity,
		HIPAARequired:   d.HIPAARequired,
		HourlyLaborCost: hourly,
		DeviceCount:     d.DeviceCount,
		LossPerIncident: loss,
	}, nil
}
