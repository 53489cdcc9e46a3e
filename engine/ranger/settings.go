package ranger

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/spaceranger/core"
	"github.com/npillmayer/spaceranger/core/designspace"
	"github.com/npillmayer/spaceranger/core/percent"
	"github.com/npillmayer/spaceranger/engine/gridlayout"
	"github.com/npillmayer/spaceranger/engine/sampling"
	"github.com/npillmayer/spaceranger/engine/textinput"
)

// AxisSetting configures the sampling of one grid dimension.
type AxisSetting struct {
	Name      string // empty: choose automatically
	Mode      sampling.Mode
	Count     int
	Locations []float64
}

// Spec returns the sample specification for a.
func (a AxisSetting) Spec() sampling.Spec {
	switch a.Mode {
	case sampling.Locations:
		return sampling.LocationsSpec(a.Locations...)
	case sampling.Instances:
		return sampling.InstancesSpec()
	}
	return sampling.CountSpec(a.Count)
}

// Settings is the configuration of a grid view. Settings are values: every
// accepted change creates a new version.
type Settings struct {
	Version            int
	DiscreteLocation   designspace.Location
	ApplyRules         bool
	ApplyKerning       bool
	X, Y               AxisSetting
	ColumnWidths       gridlayout.WidthMode
	Text               string
	Suffix             string
	CurrentGlyph       string
	InsertSources      bool
	InsertInstances    bool
	HighlightSources   bool
	HighlightInstances bool
	UsePrepolator      bool
	HighlightUnsmooths bool
	UnsmoothThreshold  float64
}

// MaxUnsmoothThreshold is the upper bound for the unsmooth threshold, in
// degrees.
const MaxUnsmoothThreshold = 4.0

// DefaultSettings returns the settings a new grid view starts with.
func DefaultSettings() Settings {
	return Settings{
		X:                 AxisSetting{Mode: sampling.Count, Count: 5, Locations: []float64{-1000, 0, 1000}},
		Y:                 AxisSetting{Mode: sampling.Count, Count: 5, Locations: []float64{-1000, 0, 1000}},
		ColumnWidths:      gridlayout.Fit,
		Text:              "HELLO",
		Suffix:            textinput.SuffixNone,
		UsePrepolator:     true,
		UnsmoothThreshold: 2.0,
	}
}

// ConfigPrefix prefixes setting keys in a schuko.Configuration.
const ConfigPrefix = "spaceranger."

// Keys lists all setting keys, in presentation order.
var Keys = []string{
	"discrete-location", "apply-rules", "apply-kerning",
	"x-axis", "x-mode", "x-count", "x-locations",
	"y-axis", "y-mode", "y-count", "y-locations",
	"column-widths", "text", "suffix", "current-glyph",
	"insert-sources", "insert-instances",
	"highlight-sources", "highlight-instances",
	"use-prepolator", "highlight-unsmooths", "unsmooth-threshold",
}

// Load reads settings from a configuration, starting from base. Keys are
// expected with prefix ConfigPrefix; unset keys keep the value of base.
// If any value is invalid, base is returned along with the error.
func Load(conf schuko.Configuration, base Settings) (Settings, error) {
	s := base
	for _, key := range Keys {
		value := conf.GetString(ConfigPrefix + key)
		if value == "" {
			continue
		}
		next, err := s.With(key, value)
		if err != nil {
			tracer().Errorf("configuration: %v", err)
			return base, err
		}
		s = next
	}
	return s, nil
}

// With returns a new version of s with key set to value. If key is unknown
// or value is invalid for key, s is returned unchanged with an EINVALID
// error.
func (s Settings) With(key, value string) (Settings, error) {
	n := s.clone()
	var err error
	switch key {
	case "discrete-location":
		n.DiscreteLocation, err = ParseLocation(value)
	case "apply-rules":
		n.ApplyRules, err = parseBool(key, value)
	case "apply-kerning":
		n.ApplyKerning, err = parseBool(key, value)
	case "x-axis":
		n.X.Name = strings.TrimSpace(value)
	case "x-mode":
		n.X.Mode, err = parseMode(value)
	case "x-count":
		n.X.Count, err = sampling.ParseCount(value)
	case "x-locations":
		n.X.Locations, err = sampling.ParseLocations(value)
	case "y-axis":
		n.Y.Name = strings.TrimSpace(value)
	case "y-mode":
		n.Y.Mode, err = parseMode(value)
	case "y-count":
		n.Y.Count, err = sampling.ParseCount(value)
	case "y-locations":
		n.Y.Locations, err = sampling.ParseLocations(value)
	case "column-widths":
		n.ColumnWidths, err = parseWidthMode(value)
	case "text":
		n.Text = value
	case "suffix":
		n.Suffix = strings.TrimSpace(value)
		if n.Suffix == "" {
			n.Suffix = textinput.SuffixNone
		}
	case "current-glyph":
		n.CurrentGlyph = strings.TrimSpace(value)
	case "insert-sources":
		n.InsertSources, err = parseBool(key, value)
	case "insert-instances":
		n.InsertInstances, err = parseBool(key, value)
	case "highlight-sources":
		n.HighlightSources, err = parseBool(key, value)
	case "highlight-instances":
		n.HighlightInstances, err = parseBool(key, value)
	case "use-prepolator":
		n.UsePrepolator, err = parseBool(key, value)
	case "highlight-unsmooths":
		n.HighlightUnsmooths, err = parseBool(key, value)
	case "unsmooth-threshold":
		n.UnsmoothThreshold, err = parseThreshold(value)
	default:
		err = core.Error(core.EINVALID, "unknown setting %q", key)
	}
	if err != nil {
		return s, err
	}
	n.Version = s.Version + 1
	return n, nil
}

// Value returns the value of key in the textual form accepted by With.
func (s Settings) Value(key string) string {
	switch key {
	case "discrete-location":
		return FormatLocation(s.DiscreteLocation)
	case "apply-rules":
		return strconv.FormatBool(s.ApplyRules)
	case "apply-kerning":
		return strconv.FormatBool(s.ApplyKerning)
	case "x-axis":
		return s.X.Name
	case "x-mode":
		return s.X.Mode.String()
	case "x-count":
		return strconv.Itoa(s.X.Count)
	case "x-locations":
		return sampling.FormatLocations(s.X.Locations)
	case "y-axis":
		return s.Y.Name
	case "y-mode":
		return s.Y.Mode.String()
	case "y-count":
		return strconv.Itoa(s.Y.Count)
	case "y-locations":
		return sampling.FormatLocations(s.Y.Locations)
	case "column-widths":
		return s.ColumnWidths.String()
	case "text":
		return s.Text
	case "suffix":
		return s.Suffix
	case "current-glyph":
		return s.CurrentGlyph
	case "insert-sources":
		return strconv.FormatBool(s.InsertSources)
	case "insert-instances":
		return strconv.FormatBool(s.InsertInstances)
	case "highlight-sources":
		return strconv.FormatBool(s.HighlightSources)
	case "highlight-instances":
		return strconv.FormatBool(s.HighlightInstances)
	case "use-prepolator":
		return strconv.FormatBool(s.UsePrepolator)
	case "highlight-unsmooths":
		return strconv.FormatBool(s.HighlightUnsmooths)
	case "unsmooth-threshold":
		return strconv.FormatFloat(s.UnsmoothThreshold, 'f', -1, 64)
	}
	return ""
}

func (s Settings) clone() Settings {
	n := s
	if s.DiscreteLocation != nil {
		n.DiscreteLocation = s.DiscreteLocation.Clone()
	}
	n.X.Locations = append([]float64(nil), s.X.Locations...)
	n.Y.Locations = append([]float64(nil), s.Y.Locations...)
	return n
}

// ParseLocation parses a location of the form "italic=1 serif=0". Bindings
// may be separated by spaces or commas.
func ParseLocation(input string) (designspace.Location, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	loc := designspace.Location{}
	for _, f := range fields {
		name, value, found := strings.Cut(f, "=")
		if !found || name == "" {
			return nil, core.Error(core.EINVALID, "location binding %q is not of the form axis=value", f)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, core.Error(core.EINVALID, "location binding %q has no valid value", f)
		}
		loc[name] = v
	}
	return loc, nil
}

// FormatLocation is the inverse of ParseLocation.
func FormatLocation(loc designspace.Location) string {
	names := loc.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + strconv.FormatFloat(loc[name], 'f', -1, 64)
	}
	return strings.Join(parts, " ")
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, core.WrapError(err, core.EINVALID, "setting %q needs a boolean, is %q", key, value)
	}
	return b, nil
}

func parseMode(value string) (sampling.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "count":
		return sampling.Count, nil
	case "locations":
		return sampling.Locations, nil
	case "instances":
		return sampling.Instances, nil
	}
	return sampling.Count, core.Error(core.EINVALID, "axis mode must be count, locations or instances, is %q", value)
}

func parseWidthMode(value string) (gridlayout.WidthMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "fit":
		return gridlayout.Fit, nil
	case "mono", "monospace":
		return gridlayout.Monospace, nil
	}
	return gridlayout.Fit, core.Error(core.EINVALID, "column widths must be fit or mono, is %q", value)
}

// parseThreshold reads an angle in degrees, or a percentage of
// MaxUnsmoothThreshold such as "50%".
func parseThreshold(value string) (float64, error) {
	if strings.HasSuffix(strings.TrimSpace(value), "%") {
		p, err := percent.Parse(value)
		if err != nil {
			return 0, core.WrapError(err, core.EINVALID, "unsmooth threshold is not a percentage: %q", value)
		}
		return p.Fraction() * MaxUnsmoothThreshold, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "unsmooth threshold is not a number: %q", value)
	}
	if math.IsNaN(v) || v < 0 || v > MaxUnsmoothThreshold {
		return 0, core.Error(core.EINVALID, "unsmooth threshold must be within [0, %g], is %g", MaxUnsmoothThreshold, v)
	}
	return v, nil
}
