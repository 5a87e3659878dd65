// Package form validates user-supplied pattern dimensions.
package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/nestframe/internal/pattern"
)

const (
	DefaultMinWidth   = 20
	DefaultMinHeight  = 20
	DefaultMinPadding = 4

	DefaultMaxWidth   = 400
	DefaultMaxHeight  = 400
	DefaultMaxPadding = 100
)

// Limits bound each dimension. A zero maximum means unbounded.
type Limits struct {
	MinWidth   int `yaml:"min_width" json:"min_width"`
	MinHeight  int `yaml:"min_height" json:"min_height"`
	MinPadding int `yaml:"min_padding" json:"min_padding"`
	MaxWidth   int `yaml:"max_width" json:"max_width"`
	MaxHeight  int `yaml:"max_height" json:"max_height"`
	MaxPadding int `yaml:"max_padding" json:"max_padding"`
}

func DefaultLimits() Limits {
	return Limits{
		MinWidth:   DefaultMinWidth,
		MinHeight:  DefaultMinHeight,
		MinPadding: DefaultMinPadding,
		MaxWidth:   DefaultMaxWidth,
		MaxHeight:  DefaultMaxHeight,
		MaxPadding: DefaultMaxPadding,
	}
}

// Input holds the raw values of the three form fields.
type Input struct {
	Width   string `json:"width"`
	Height  string `json:"height"`
	Padding string `json:"padding"`
}

type field struct {
	name     string
	raw      string
	min, max int
}

func (l Limits) fields(in Input) []field {
	return []field{
		{"Width", in.Width, l.MinWidth, l.MaxWidth},
		{"Height", in.Height, l.MinHeight, l.MaxHeight},
		{"Padding", in.Padding, l.MinPadding, l.MaxPadding},
	}
}

// Validate parses in and checks Width, Height and Padding in that order. Only
// the first rejected field is reported.
func Validate(in Input, lim Limits) (pattern.Dimensions, error) {
	var vals [3]int
	for i, f := range lim.fields(in) {
		v, err := f.parse()
		if err != nil {
			return pattern.Dimensions{}, err
		}
		vals[i] = v
	}
	return pattern.Dimensions{Width: vals[0], Height: vals[1], Padding: vals[2]}, nil
}

// ValidateAll is like Validate but reports every rejected field, joined
// with errors.Join.
func ValidateAll(in Input, lim Limits) (pattern.Dimensions, error) {
	var (
		vals [3]int
		errs []error
	)
	for i, f := range lim.fields(in) {
		v, err := f.parse()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		vals[i] = v
	}
	if len(errs) > 0 {
		return pattern.Dimensions{}, errors.Join(errs...)
	}
	return pattern.Dimensions{Width: vals[0], Height: vals[1], Padding: vals[2]}, nil
}

// Check applies the numeric rules to dimensions that are already parsed,
// such as values from flags, presets or a config file.
func (l Limits) Check(d pattern.Dimensions) error {
	_, err := Validate(Input{
		Width:   strconv.Itoa(d.Width),
		Height:  strconv.Itoa(d.Height),
		Padding: strconv.Itoa(d.Padding),
	}, l)
	return err
}

// maxExact is the largest magnitude a float64 holds without losing integer
// precision.
const maxExact = 1 << 53

// parseNumber reads a field the way a browser's Number() does for the inputs
// a form sends: blank is 0 and integral decimals such as "20.0" are whole
// numbers.
func parseNumber(raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) || math.Abs(f) > maxExact {
		return 0, false
	}
	return int(f), true
}

func (f field) parse() (int, error) {
	raw := strings.TrimSpace(f.raw)
	v, ok := parseNumber(raw)
	if !ok {
		return 0, &FieldError{Field: f.name, Value: raw, Wrapped: ErrNotInteger}
	}
	if v < f.min {
		return 0, &FieldError{Field: f.name, Value: raw, Limit: f.min, Wrapped: ErrBelowMinimum}
	}
	if f.max > 0 && v > f.max {
		return 0, &FieldError{Field: f.name, Value: raw, Limit: f.max, Wrapped: ErrAboveMaximum}
	}
	if v%2 != 0 {
		return 0, &FieldError{Field: f.name, Value: raw, Wrapped: ErrOdd}
	}
	return v, nil
}
