package gradient

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/casekit/internal/stringutil"
	"github.com/erraggy/casekit/kiterrors"
)

// Type is the CSS gradient function.
type Type string

const (
	// Linear renders linear-gradient(<angle>deg, ...).
	Linear Type = "linear"
	// Radial renders radial-gradient(circle, ...). The angle is ignored.
	Radial Type = "radial"
	// Conic renders conic-gradient(from <angle>deg, ...).
	Conic Type = "conic"
)

// Limits on a gradient definition.
const (
	MinStops = 2
	MaxStops = 5

	MinAngle = 0
	MaxAngle = 360

	MinPosition = 0
	MaxPosition = 100
)

// DefaultAngle is the angle of a new gradient, in degrees.
const DefaultAngle = 90

// Types returns the supported gradient types.
func Types() []Type {
	return []Type{Linear, Radial, Conic}
}

// ParseType resolves a gradient type name, ignoring case.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Types(), t) {
		return t, nil
	}
	return "", &kiterrors.ConfigError{Option: "type", Value: s, Message: "valid types: linear, radial, conic"}
}

// UsesAngle reports whether the angle appears in the rendered CSS.
func (t Type) UsesAngle() bool {
	return t == Linear || t == Conic
}

// Stop is a color stop. Position is a percentage along the gradient line.
type Stop struct {
	Color    string `json:"color"    yaml:"color"`
	Position int    `json:"position" yaml:"position"`
}

func (s Stop) String() string {
	return fmt.Sprintf("%s %d%%", s.Color, s.Position)
}

// Gradient describes a CSS background gradient.
type Gradient struct {
	Type  Type   `json:"type"  yaml:"type"`
	Angle int    `json:"angle" yaml:"angle"`
	Stops []Stop `json:"stops" yaml:"stops"`
}

// Option configures a Gradient built by New.
type Option func(*Gradient) error

// WithType sets the gradient type.
func WithType(t Type) Option {
	return func(g *Gradient) error {
		g.Type = t
		return nil
	}
}

// WithAngle sets the angle in degrees.
// Default: 90
func WithAngle(degrees int) Option {
	return func(g *Gradient) error {
		g.Angle = degrees
		return nil
	}
}

// WithStops replaces the default color stops.
func WithStops(stops ...Stop) Option {
	return func(g *Gradient) error {
		g.Stops = slices.Clone(stops)
		return nil
	}
}

// Default returns the starting gradient: linear, 90deg, blue to violet.
func Default() *Gradient {
	return &Gradient{
		Type:  Linear,
		Angle: DefaultAngle,
		Stops: []Stop{
			{Color: "#3b82f6", Position: 0},
			{Color: "#8b5cf6", Position: 100},
		},
	}
}

// New builds a gradient from Default and opts, then validates it.
func New(opts ...Option) (*Gradient, error) {
	g := Default()
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("gradient: %w", err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the type, angle, stop count, and every stop.
func (g *Gradient) Validate() error {
	if !slices.Contains(Types(), g.Type) {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "type", Value: string(g.Type), Message: "valid types: linear, radial, conic"})
	}
	if g.Angle < MinAngle || g.Angle > MaxAngle {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "angle", Value: g.Angle, Message: fmt.Sprintf("must be between %d and %d", MinAngle, MaxAngle)})
	}
	if len(g.Stops) < MinStops {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "stops", Value: len(g.Stops), Message: fmt.Sprintf("at least %d color stops are required", MinStops)})
	}
	if len(g.Stops) > MaxStops {
		return fmt.Errorf("gradient: %w", &kiterrors.ResourceLimitError{ResourceType: "color_stops", Limit: MaxStops, Actual: int64(len(g.Stops))})
	}
	for i, s := range g.Stops {
		if err := validateStop(s); err != nil {
			return fmt.Errorf("gradient: stop %d: %w", i, err)
		}
	}
	return nil
}

func validateStop(s Stop) error {
	if !stringutil.IsHexColor(s.Color) {
		return &kiterrors.ConfigError{Option: "color", Value: s.Color, Message: "must be a #rgb or #rrggbb hex color"}
	}
	if s.Position < MinPosition || s.Position > MaxPosition {
		return &kiterrors.ConfigError{Option: "position", Value: s.Position, Message: fmt.Sprintf("must be between %d and %d", MinPosition, MaxPosition)}
	}
	return nil
}

// SortedStops returns a copy of the stops ordered by position. Stops with
// equal positions keep their relative order.
func (g *Gradient) SortedStops() []Stop {
	stops := slices.Clone(g.Stops)
	slices.SortStableFunc(stops, func(a, b Stop) int {
		return a.Position - b.Position
	})
	return stops
}

// CSS returns the gradient function, e.g.
// "linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%)".
// It returns "" for an unknown type.
func (g *Gradient) CSS() string {
	parts := make([]string, 0, len(g.Stops))
	for _, s := range g.SortedStops() {
		parts = append(parts, s.String())
	}
	stops := strings.Join(parts, ", ")

	switch g.Type {
	case Linear:
		return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Angle, stops)
	case Radial:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops)
	case Conic:
		return fmt.Sprintf("conic-gradient(from %ddeg, %s)", g.Angle, stops)
	default:
		return ""
	}
}

// Declaration returns the CSS background declaration, e.g.
// "background: linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%);".
func (g *Gradient) Declaration() string {
	return "background: " + g.CSS() + ";"
}

// AddStop appends a stop. It fails once the gradient has MaxStops stops.
func (g *Gradient) AddStop(s Stop) error {
	if len(g.Stops) >= MaxStops {
		return fmt.Errorf("gradient: %w", &kiterrors.ResourceLimitError{ResourceType: "color_stops", Limit: MaxStops, Actual: int64(len(g.Stops) + 1)})
	}
	if err := validateStop(s); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	g.Stops = append(g.Stops, s)
	return nil
}

// RemoveStop deletes the stop at index i. It fails when only MinStops
// stops remain.
func (g *Gradient) RemoveStop(i int) error {
	if i < 0 || i >= len(g.Stops) {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "index", Value: i, Message: "no such color stop"})
	}
	if len(g.Stops) <= MinStops {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "stops", Value: len(g.Stops), Message: fmt.Sprintf("at least %d color stops are required", MinStops)})
	}
	g.Stops = slices.Delete(g.Stops, i, i+1)
	return nil
}

// UpdateStop replaces the stop at index i.
func (g *Gradient) UpdateStop(i int, s Stop) error {
	if i < 0 || i >= len(g.Stops) {
		return fmt.Errorf("gradient: %w", &kiterrors.ConfigError{Option: "index", Value: i, Message: "no such color stop"})
	}
	if err := validateStop(s); err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	g.Stops[i] = s
	return nil
}

// ParseStop parses "color position" or "color position%", e.g. "#fff 50%".
// A bare color gets position 0.
func ParseStop(s string) (Stop, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Stop{}, &kiterrors.ConfigError{Option: "stop", Value: s, Message: `expected "<color> [<position>%]"`}
	}
	stop := Stop{Color: fields[0]}
	if len(fields) == 2 {
		pos, err := strconv.Atoi(strings.TrimSuffix(fields[1], "%"))
		if err != nil {
			return Stop{}, &kiterrors.ConfigError{Option: "stop", Value: s, Message: "position must be an integer percentage", Cause: err}
		}
		stop.Position = pos
	}
	if err := validateStop(stop); err != nil {
		return Stop{}, err
	}
	return stop, nil
}
