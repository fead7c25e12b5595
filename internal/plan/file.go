package plan

import (
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// File is the on-disk plan authoring format: one assumption set per
// planning year for each of the four sub-plans.
type File struct {
	CompanyID        string                     `yaml:"company_id"`
	BaseYear         int                        `yaml:"base_year"`
	CurrentEmployees int                        `yaml:"current_employee_count"`
	ExistingDebt     float64                    `yaml:"existing_debt"`
	Labor            []LaborAssumption          `yaml:"labor"`
	Investments      [][]Investment             `yaml:"investments"`
	WorkingCapital   []WorkingCapitalAssumption `yaml:"working_capital"`
	Financing        []FinancingAssumption      `yaml:"financing"`
}

// LoadFile reads a plan file from a YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "plan: read file %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "plan: parse file")
	}
	if f.BaseYear == 0 {
		return nil, eris.New("plan: base_year is required")
	}
	return &f, nil
}

// Build runs the four sub-plan builders over the file's assumptions and
// integrates them. The company id is parsed when present, otherwise a new
// one is assigned.
func (f *File) Build() (Integrated, error) {
	companyID := uuid.New()
	if f.CompanyID != "" {
		parsed, err := uuid.Parse(f.CompanyID)
		if err != nil {
			return Integrated{}, eris.Wrapf(err, "plan: company_id %q", f.CompanyID)
		}
		companyID = parsed
	}

	labor := BuildLaborPlan(f.BaseYear, f.CurrentEmployees, f.Labor)
	capex := BuildCapexPlan(f.BaseYear, f.Investments)
	wc := BuildWorkingCapitalPlan(f.BaseYear, f.WorkingCapital)
	fin := BuildFinancingPlan(f.BaseYear, f.ExistingDebt, f.Financing)

	return Integrate(companyID, f.BaseYear, labor, capex, wc, fin), nil
}
