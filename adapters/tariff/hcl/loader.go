// Package hcl loads tariff tables from HCL documents.
//
// A tariff file overrides the built-in tariff entry by entry. Each hull
// schedule, liability fee or accident package in the file replaces the
// built-in entry with the same key; every other entry is kept. A new
// accident package id adds a package.
//
//	hull "private_passenger" {
//	  value_band "under_500m" {
//	    age_under_3 = [1.50, 1.60, 1.70, 1.80]
//	    age_3_to_6  = [1.60, 1.70, 1.80, 1.90]
//	    age_6_to_10 = [1.75, 1.85, 1.95, 2.05]
//	    age_over_10 = [1.90, 2.00, 2.10, null]
//	  }
//	}
//	hull "tractor" {
//	  age_under_3 = [2.20, 2.30, 2.40, 2.50]
//	  ...
//	}
//	liability "cargo_3_8t" { fee = 1660000 }
//	accident_package "nntx-10m" {
//	  sum_insured_per_seat = 10000000
//	  private_per_seat     = 10000
//	  commercial_per_seat  = 15000
//	}
//
// A null rate marks a tier that is not offered.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"motor-premium/core/tariff"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
)

type tariffFile struct {
	Hull      []hullBlock      `hcl:"hull,block"`
	Liability []liabilityBlock `hcl:"liability,block"`
	Accident  []accidentBlock  `hcl:"accident_package,block"`
}

type hullBlock struct {
	Usage  string      `hcl:"usage,label"`
	Bands  []bandBlock `hcl:"value_band,block"`
	Under3 []*float64  `hcl:"age_under_3,optional"`
	From3  []*float64  `hcl:"age_3_to_6,optional"`
	From6  []*float64  `hcl:"age_6_to_10,optional"`
	Over10 []*float64  `hcl:"age_over_10,optional"`
}

type bandBlock struct {
	Band   string     `hcl:"band,label"`
	Under3 []*float64 `hcl:"age_under_3,optional"`
	From3  []*float64 `hcl:"age_3_to_6,optional"`
	From6  []*float64 `hcl:"age_6_to_10,optional"`
	Over10 []*float64 `hcl:"age_over_10,optional"`
}

// ageRows are the four age rows of one schedule or value band
type ageRows [types.AgeBucketCount][]*float64

func (b hullBlock) rows() ageRows {
	return ageRows{b.Under3, b.From3, b.From6, b.Over10}
}

func (b bandBlock) rows() ageRows {
	return ageRows{b.Under3, b.From3, b.From6, b.Over10}
}

type liabilityBlock struct {
	Category string `hcl:"category,label"`
	Fee      int64  `hcl:"fee"`
}

type accidentBlock struct {
	ID                string `hcl:"id,label"`
	SumInsuredPerSeat int64  `hcl:"sum_insured_per_seat,optional"`
	PrivatePerSeat    int64  `hcl:"private_per_seat"`
	CommercialPerSeat int64  `hcl:"commercial_per_seat"`
}

// Loader reads a tariff file from disk
type Loader struct {
	path string
}

// NewLoader creates a loader for path
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Source names the file the tables come from
func (l *Loader) Source() string {
	return "hcl:" + l.path
}

// Load reads and parses the tariff file
func (l *Loader) Load(ctx context.Context) (tariff.Tables, error) {
	if err := ctx.Err(); err != nil {
		return tariff.Tables{}, err
	}
	src, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return tariff.Tables{}, errors.NotFound("tariff file", l.path)
		}
		return tariff.Tables{}, errors.Wrap(errors.TypeInternal, "failed to read tariff file", err)
	}
	return Parse(src, l.path)
}

// Parse decodes a tariff document and merges its entries into the built-in
// tables
func Parse(src []byte, filename string) (tariff.Tables, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return tariff.Tables{}, diagError(diags)
	}

	var doc tariffFile
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return tariff.Tables{}, diagError(diags)
	}

	tables := tariff.Default()
	if err := mergeHull(tables.Hull, doc.Hull); err != nil {
		return tariff.Tables{}, err
	}
	if err := mergeLiability(tables.Liability, doc.Liability); err != nil {
		return tariff.Tables{}, err
	}
	if err := mergeAccident(tables.Accident, doc.Accident); err != nil {
		return tariff.Tables{}, err
	}

	if err := tables.Validate(); err != nil {
		return tariff.Tables{}, err
	}
	return tables, nil
}

func mergeHull(table tariff.HullTable, blocks []hullBlock) error {
	seen := make(map[types.UsageCategory]bool, len(blocks))
	for _, b := range blocks {
		usage := types.UsageCategory(b.Usage)
		if !usage.IsValid() {
			return errors.Validation("hull", "unknown usage category %q", b.Usage)
		}
		if seen[usage] {
			return errors.Validation("hull", "duplicate schedule for %s", usage)
		}
		seen[usage] = true

		if usage.IsPrivatePassenger() {
			if b.rows().any() {
				return errors.Validation("hull", "%s rows must be given per value_band", usage)
			}
			var grid [types.ValueBucketCount][types.AgeBucketCount]types.RateRow
			bands := make(map[types.ValueBucket]bool, types.ValueBucketCount)
			for _, band := range b.Bands {
				v, ok := types.ParseValueBucket(band.Band)
				if !ok {
					return errors.Validation("hull", "%s: unknown value band %q", usage, band.Band)
				}
				if bands[v] {
					return errors.Validation("hull", "%s: duplicate value band %q", usage, band.Band)
				}
				bands[v] = true
				rows, err := band.rows().build(fmt.Sprintf("%s/%s", usage, v))
				if err != nil {
					return err
				}
				grid[v] = rows
			}
			if len(bands) != types.ValueBucketCount {
				return errors.Validation("hull", "%s needs all %d value bands", usage, types.ValueBucketCount)
			}
			table[usage] = tariff.Banded(grid)
			continue
		}

		if len(b.Bands) > 0 {
			return errors.Validation("hull", "%s does not take value bands", usage)
		}
		rows, err := b.rows().build(usage.String())
		if err != nil {
			return err
		}
		table[usage] = tariff.Flat(rows)
	}
	return nil
}

func (a ageRows) any() bool {
	for _, row := range a {
		if row != nil {
			return true
		}
	}
	return false
}

func (a ageRows) build(where string) ([types.AgeBucketCount]types.RateRow, error) {
	var rows [types.AgeBucketCount]types.RateRow
	for age, raw := range a {
		if len(raw) != types.BaseTierCount {
			return rows, errors.Validation("hull", "%s age %s: want %d rates, got %d",
				where, types.AgeBucket(age), types.BaseTierCount, len(raw))
		}
		rows[age] = types.Row(raw...)
	}
	return rows, nil
}

func mergeLiability(table tariff.LiabilityTable, blocks []liabilityBlock) error {
	seen := make(map[types.LiabilityCategory]bool, len(blocks))
	for _, b := range blocks {
		category := types.LiabilityCategory(b.Category)
		if !category.IsDefined() {
			return errors.Validation("liability", "invalid category %q", b.Category)
		}
		if seen[category] {
			return errors.Validation("liability", "duplicate category %q", b.Category)
		}
		seen[category] = true
		table[category] = b.Fee
	}
	return nil
}

func mergeAccident(list tariff.AccidentPriceList, blocks []accidentBlock) error {
	seen := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		if seen[b.ID] {
			return errors.Validation("accident_package", "duplicate package %q", b.ID)
		}
		seen[b.ID] = true
		list[b.ID] = tariff.AccidentPackage{
			SumInsuredPerSeat: b.SumInsuredPerSeat,
			PrivatePerSeat:    b.PrivatePerSeat,
			CommercialPerSeat: b.CommercialPerSeat,
		}
	}
	return nil
}

// diagError reports the first error diagnostic with its position
func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		msg := diag.Summary
		if diag.Detail != "" {
			msg += ": " + diag.Detail
		}
		e := errors.Parsing("invalid tariff file", diags)
		e.Message = msg
		if diag.Subject != nil {
			e.WithContext("file", diag.Subject.Filename).WithContext("line", diag.Subject.Start.Line)
		}
		return e
	}
	return errors.Parsing("invalid tariff file", diags)
}
