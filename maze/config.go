// SPDX-License-Identifier: MIT
// Package: lvmaze/maze
//
// config.go: declarative build input and its validation.
//
// Contract:
//   • Field names follow the JSON form accepted by the web surface
//     ("grid.cellShape", "grid.width", ...), so error messages can quote
//     the property a caller must fix.
//   • Struct-level rules live in `validate` tags; rules that need other
//     packages (algorithm lookup, mask geometry) run in Build.

package maze

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/surface"
)

// MinLineWidth is the thinnest line-width adjustment Build accepts; smaller
// values are raised to it.
const MinLineWidth = 0.1

// GridConfig selects the cell shape, its dimensions and colours.
type GridConfig struct {
	CellShape grid.Shape `json:"cellShape" validate:"required,oneof=square triangle hexagon circle"`
	Width     int        `json:"width,omitempty" validate:"required_unless=CellShape circle,gte=0"`
	Height    int        `json:"height,omitempty" validate:"required_unless=CellShape circle,gte=0"`
	Layers    int        `json:"layers,omitempty" validate:"required_if=CellShape circle,gte=0"`

	OpenColor   string `json:"openColor,omitempty"`
	ClosedColor string `json:"closedColor,omitempty"`
	PathColor   string `json:"pathColor,omitempty"`
}

// Config is the complete input to Build.
type Config struct {
	Grid       GridConfig      `json:"grid"`
	Algorithm  string          `json:"algorithm" validate:"required"`
	ExitConfig grid.ExitConfig `json:"exitConfig,omitempty" validate:"omitempty,oneof=vertical horizontal hardest"`
	LineWidth  float64         `json:"lineWidth,omitempty" validate:"gte=0"`

	// RandomSeed fixes the random source; nil seeds from the wall clock.
	RandomSeed *int64 `json:"randomSeed,omitempty"`

	// Mask lists cells removed before carving.
	Mask [][2]int `json:"mask,omitempty"`

	Surface surface.Surface `json:"-" validate:"-"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks the struct-level rules of c.
func (c Config) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return invalid("%v", err)
	}
	return describe(fieldErrs[0])
}

// describe renders a field error the way the web form reports it.
func describe(fe validator.FieldError) error {
	_, property, _ := strings.Cut(fe.Namespace(), ".")
	switch {
	case property == "grid.cellShape" && fe.Tag() == "required":
		return invalid(`no "grid.cellShape" property in config object`)
	case property == "grid.cellShape":
		return invalid(`invalid "grid.cellShape" property in config object`)
	default:
		return invalid(`missing/invalid %q property in config object`, property)
	}
}
