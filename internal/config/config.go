// Package config loads and validates the run configuration for a
// matrix-element generation run. Configs are YAML files checked against an
// embedded CUE schema before any physics runs; semantic rules the schema
// cannot express (operator registry membership, isospin window ordering)
// are checked in Go with the same coded-error shape.
package config

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/chiraleft/chime/internal/chiral"
)

// Validation error codes (C100-C199).
const (
	ErrSchema          = "C100" // schema constraint violated
	ErrUnknownOrder    = "C101" // order name not in the chiral sequence
	ErrUnknownOperator = "C102" // operator name not registered
	ErrIsospinWindow   = "C103" // tmin exceeds tmax
)

// ValidationError is one coded configuration defect.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// RunConfig describes one generation run.
type RunConfig struct {
	// Operator is the registered operator name (case-sensitive).
	Operator string `yaml:"operator" json:"operator"`

	// Order is the highest chiral order to accumulate, or "full".
	Order string `yaml:"order" json:"order"`

	// Hw is the oscillator energy of the basis in MeV.
	Hw float64 `yaml:"hw" json:"hw"`

	// Nmax and Jmax truncate the relative basis.
	Nmax int `yaml:"nmax" json:"nmax"`
	Jmax int `yaml:"jmax" json:"jmax"`

	// Tmin and Tmax bound the isospin transfer ranks iterated.
	Tmin int `yaml:"tmin" json:"tmin"`
	Tmax int `yaml:"tmax" json:"tmax"`

	// Regularize toggles the coordinate-space regulator; Regulator is its
	// length scale in fm.
	Regularize bool    `yaml:"regularize" json:"regularize"`
	Regulator  float64 `yaml:"regulator" json:"regulator"`

	// OutputDir receives the operator files.
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Workers is the sector fan-out width; 0 or 1 means serial.
	Workers int `yaml:"workers" json:"workers"`
}

// runSchema is the CUE schema every config must satisfy.
const runSchema = `
#Run: {
	operator:   string & != ""
	order:      "lo" | "nlo" | "n2lo" | "n3lo" | "n4lo" | "full"
	hw:         number & >0
	nmax:       int & >=0
	jmax:       int & >=0
	tmin:       int & >=0 & <=2
	tmax:       int & >=0 & <=2
	regularize: bool
	regulator:  number & >=0
	output_dir: string & != ""
	workers:    int & >=0
}
`

// Default returns a runnable baseline configuration.
func Default() RunConfig {
	return RunConfig{
		Operator:  "identity",
		Order:     "lo",
		Hw:        20,
		Nmax:      0,
		Jmax:      0,
		Tmin:      0,
		Tmax:      0,
		Regulator: 0.9,
		OutputDir: ".",
		Workers:   1,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (RunConfig, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config against the CUE schema and the semantic rules.
// Returns all defects found, not just the first.
func (c RunConfig) Validate() []ValidationError {
	var errs []ValidationError

	ctx := cuecontext.New()
	schema := ctx.CompileString(runSchema).LookupPath(cue.ParsePath("#Run"))
	unified := schema.Unify(ctx.Encode(c))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, ValidationError{
				Code:    ErrSchema,
				Field:   strings.Join(pathStrings(e.Path()), "."),
				Message: e.Error(),
			})
		}
	}

	if _, err := chiral.ParseOrder(c.Order); err != nil {
		errs = append(errs, ValidationError{
			Code: ErrUnknownOrder, Field: "order", Message: err.Error(),
		})
	}
	if _, err := chiral.New(c.Operator); err != nil {
		errs = append(errs, ValidationError{
			Code: ErrUnknownOperator, Field: "operator", Message: err.Error(),
		})
	}
	if c.Tmin > c.Tmax {
		errs = append(errs, ValidationError{
			Code:    ErrIsospinWindow,
			Field:   "tmin",
			Message: fmt.Sprintf("tmin %d exceeds tmax %d", c.Tmin, c.Tmax),
		})
	}
	return errs
}

func pathStrings(path []string) []string {
	if len(path) == 0 {
		return []string{"config"}
	}
	return path
}
