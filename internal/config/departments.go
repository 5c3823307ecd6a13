package config

import (
	"encoding/json"
	"fmt"
	"os"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed departments.json
var defaultDepartmentsJSON []byte

//go:embed departments_schema.json
var departmentsSchemaJSON []byte

// Weights distributes the eligibility score across scoring dimensions.
// The four weights for a department sum to 100.
type Weights struct {
	SkillMatch    float64 `json:"skill_match"`
	Experience    float64 `json:"experience"`
	Education     float64 `json:"education"`
	ProjectsCerts float64 `json:"projects_certs"`
}

// Department holds the hiring criteria a candidate is scored against.
type Department struct {
	Name              string   `json:"name"`
	RequiredSkills    []string `json:"required_skills"`
	MinExperience     float64  `json:"min_experience"`
	RequiredEducation []string `json:"required_education"`
	Weights           Weights  `json:"weights"`
	MinScore          float64  `json:"min_score"`
}

// Registry is an immutable set of department criteria, keyed by name
// and preserving file order.
type Registry struct {
	names  []string
	byName map[string]Department
}

type departmentsFile struct {
	Departments []Department `json:"departments"`
}

// DefaultDepartments returns the registry built from the embedded
// criteria file.
func DefaultDepartments() *Registry {
	registry, err := parseDepartments(defaultDepartmentsJSON)
	if err != nil {
		// The embedded file is validated by tests; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded departments.json invalid: %v", err))
	}
	return registry
}

// LoadDepartments reads department criteria from a JSON file,
// validating it against the criteria schema before use.
func LoadDepartments(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read departments file %s: %w", path, err)
	}
	registry, err := parseDepartments(data)
	if err != nil {
		return nil, fmt.Errorf("invalid departments file %s: %w", path, err)
	}
	return registry, nil
}

func parseDepartments(data []byte) (*Registry, error) {
	schema := gojsonschema.NewBytesLoader(departmentsSchemaJSON)
	document := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return nil, fmt.Errorf("schema validation failed: %s", errs[0])
		}
		return nil, fmt.Errorf("schema validation failed")
	}

	var file departmentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse departments JSON: %w", err)
	}

	registry := &Registry{byName: make(map[string]Department, len(file.Departments))}
	for _, dept := range file.Departments {
		if _, dup := registry.byName[dept.Name]; dup {
			return nil, fmt.Errorf("duplicate department %q", dept.Name)
		}
		registry.names = append(registry.names, dept.Name)
		registry.byName[dept.Name] = dept
	}
	return registry, nil
}

// Names returns department names in file order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get looks up a department by exact name.
func (r *Registry) Get(name string) (Department, bool) {
	dept, ok := r.byName[name]
	return dept, ok
}

// Len returns the number of configured departments.
func (r *Registry) Len() int {
	return len(r.names)
}
