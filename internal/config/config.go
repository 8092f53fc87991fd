// Package config reads linear systems and benchmark sweep settings from YAML.
package config

import (
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// Sweep のデフォルト値と上限
const (
	// DefaultMinN は最小の系のサイズ
	DefaultMinN = 2
	// DefaultMaxN は最大の系のサイズ
	DefaultMaxN = 20
	// DefaultStep はサイズの増分
	DefaultStep = 1
	// DefaultSeed は乱数系生成のシード
	DefaultSeed = 42
	// MaxSweepSize は max_n に許される最大値
	MaxSweepSize = 2000
)

// System is a linear system read from a YAML file:
//
//	name: textbook 3x3
//	method: gauss
//	a:
//	  - [2, 1, -1]
//	  - [-3, -1, 2]
//	  - [-2, 1, 2]
//	b: [8, -11, -3]
type System struct {
	Name   string      `yaml:"name"`
	Method string      `yaml:"method"`
	A      [][]float64 `yaml:"a"`
	B      []float64   `yaml:"b"`
}

// Sweep configures a benchmark sweep over system sizes.
type Sweep struct {
	MinN    int      `yaml:"min_n"`
	MaxN    int      `yaml:"max_n"`
	Step    int      `yaml:"step"`
	Seed    uint64   `yaml:"seed"`
	Methods []string `yaml:"methods"`
	Workers int      `yaml:"workers"`
}

// DefaultSweep returns n = DefaultMinN..DefaultMaxN over every known method.
func DefaultSweep() *Sweep {
	methods := make([]string, 0, 3)
	for _, m := range linear.Methods() {
		methods = append(methods, string(m))
	}
	return &Sweep{
		MinN:    DefaultMinN,
		MaxN:    DefaultMaxN,
		Step:    DefaultStep,
		Seed:    DefaultSeed,
		Methods: methods,
	}
}

// LoadSystem reads the YAML file at path and validates it like ParseSystem.
func LoadSystem(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read system file %s", path)
	}
	return ParseSystem(data)
}

// ParseSystem decodes a System from YAML and returns it only if Validate passes.
func ParseSystem(data []byte) (*System, error) {
	sys := &System{}
	if err := yaml.Unmarshal(data, sys); err != nil {
		return nil, errors.Wrap(err, "parse system")
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}
	return sys, nil
}

// Validate checks that A is non-empty and square and that b matches it.
// An empty method is allowed and means "gauss".
func (s *System) Validate() error {
	n := len(s.A)
	if n == 0 {
		return errors.NewValidationError("a", "coefficient matrix must not be empty", n)
	}
	for i, row := range s.A {
		if len(row) != n {
			return errors.NewValidationError("a", "coefficient matrix must be square", []int{i, len(row)})
		}
	}
	if len(s.B) != n {
		return errors.NewValidationError("b", "length must equal the number of rows of a", len(s.B))
	}
	if err := errors.CheckMatrix("a", rowsView(s.A), n, n); err != nil {
		return errors.NewValidationError("a", "coefficients must be finite", err.Error())
	}
	if err := errors.CheckNumericalStability("b", s.B); err != nil {
		return errors.NewValidationError("b", "values must be finite", err.Error())
	}
	if s.Method != "" {
		if _, err := linear.ParseMethod(s.Method); err != nil {
			return errors.NewValidationError("method", "unknown method", s.Method)
		}
	}
	return nil
}

type rowsView [][]float64

func (r rowsView) At(i, j int) float64 { return r[i][j] }

// Matrices converts the system into gonum types.
func (s *System) Matrices() (*mat.Dense, *mat.VecDense, error) {
	a, err := linear.NewDenseFromRows(s.A)
	if err != nil {
		return nil, nil, err
	}
	b, err := linear.NewVecFromSlice(s.B)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// SolveMethod returns the configured method, defaulting to Gauss.
func (s *System) SolveMethod() (linear.Method, error) {
	if s.Method == "" {
		return linear.MethodGauss, nil
	}
	return linear.ParseMethod(s.Method)
}

// LoadSweep reads a sweep file at path. Keys missing from the file keep
// their DefaultSweep values.
func LoadSweep(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read sweep file %s", path)
	}
	cfg := DefaultSweep()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse sweep")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns a ValidationError naming the first invalid field.
func (s *Sweep) Validate() error {
	if s.MinN < 1 {
		return errors.NewValidationError("min_n", "must be at least 1", s.MinN)
	}
	if s.MaxN < s.MinN {
		return errors.NewValidationError("max_n", "must not be smaller than min_n", s.MaxN)
	}
	if s.MaxN > MaxSweepSize {
		return errors.NewValidationError("max_n", "too large", s.MaxN)
	}
	if s.Step < 1 {
		return errors.NewValidationError("step", "must be at least 1", s.Step)
	}
	if len(s.Methods) == 0 {
		return errors.NewValidationError("methods", "at least one method is required", s.Methods)
	}
	if _, err := s.ParsedMethods(); err != nil {
		return err
	}
	return nil
}

// Sizes lists every n visited by the sweep in increasing order.
func (s *Sweep) Sizes() []int {
	var sizes []int
	for n := s.MinN; n <= s.MaxN; n += s.Step {
		sizes = append(sizes, n)
	}
	return sizes
}

// ParsedMethods resolves the method names, aliases included, in file order.
func (s *Sweep) ParsedMethods() ([]linear.Method, error) {
	methods := make([]linear.Method, 0, len(s.Methods))
	for _, name := range s.Methods {
		m, err := linear.ParseMethod(name)
		if err != nil {
			return nil, errors.NewValidationError("methods", "unknown method", name)
		}
		methods = append(methods, m)
	}
	return methods, nil
}
