// Package timecode parses offset specifications ("37", "12.5s", "250f", "10%")
// and converts them to seconds against a media item's duration and frame rate.
package timecode

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Grammar is the accepted timecode form, quoted in parameter errors.
const Grammar = "NUMBER[s|f|%] (e.g. 37, 12.5s, 250f, 10%)"

// ClampSpec is resolved in place of any offset that lands past the end of
// the media.
const ClampSpec = "99%"

// Unit is the suffix of a timecode spec.
type Unit byte

const (
	UnitSeconds Unit = 's'
	UnitFrames  Unit = 'f'
	UnitPercent Unit = '%'
)

var specPattern = regexp.MustCompile(`^(\d+(?:\.\d*)?|\.\d+)?([sf%])?$`)

// MediaInfo is the media metadata needed to convert frame and percentage
// offsets into seconds.
type MediaInfo interface {
	// DurationMs returns the media duration in whole milliseconds.
	DurationMs() int64

	// FPS returns the frame rate of the primary video stream.
	// Zero means the rate is unknown.
	FPS() float64
}

// Spec is a parsed timecode.
type Spec struct {
	Value float64
	Unit  Unit
}

// ParameterError reports a timecode that is malformed or cannot be converted.
type ParameterError struct {
	Spec   string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid timecode %q: %s (expected %s)", e.Spec, e.Reason, Grammar)
}

// Parse parses a timecode spec. A missing unit means seconds.
func Parse(spec string) (Spec, error) {
	matches := specPattern.FindStringSubmatch(strings.TrimSpace(spec))
	if matches == nil {
		return Spec{}, &ParameterError{Spec: spec, Reason: "does not match grammar"}
	}
	if matches[1] == "" {
		return Spec{}, &ParameterError{Spec: spec, Reason: "missing numeric value"}
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return Spec{}, &ParameterError{Spec: spec, Reason: err.Error()}
	}

	unit := UnitSeconds
	if matches[2] != "" {
		unit = Unit(matches[2][0])
	}

	return Spec{Value: value, Unit: unit}, nil
}

// Seconds converts the spec to seconds for the given media, without clamping.
func (s Spec) Seconds(info MediaInfo) (float64, error) {
	return s.seconds(info, s.String())
}

// seconds converts s, quoting raw in any ParameterError.
func (s Spec) seconds(info MediaInfo, raw string) (float64, error) {
	var seconds float64

	switch s.Unit {
	case UnitSeconds:
		seconds = s.Value
	case UnitFrames:
		fps := info.FPS()
		if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
			return 0, &ParameterError{Spec: raw, Reason: fmt.Sprintf("frame rate %v cannot convert frames to seconds", fps)}
		}
		seconds = s.Value / fps
	case UnitPercent:
		seconds = (float64(info.DurationMs()) / 1000.0) * (s.Value / 100.0)
	default:
		return 0, &ParameterError{Spec: raw, Reason: fmt.Sprintf("unknown unit %q", rune(s.Unit))}
	}

	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, &ParameterError{Spec: raw, Reason: "offset is not a finite number"}
	}

	return seconds, nil
}

// String renders the spec back into grammar form.
func (s Spec) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + string(rune(s.Unit))
}

// Resolve parses spec and converts it to seconds. Offsets past the end of the
// media collapse to the offset of ClampSpec instead of failing.
func Resolve(spec string, info MediaInfo) (float64, error) {
	parsed, err := Parse(spec)
	if err != nil {
		return 0, err
	}

	seconds, err := parsed.seconds(info, spec)
	if err != nil {
		return 0, err
	}

	if seconds*1000 > float64(info.DurationMs()) {
		if strings.TrimSpace(spec) == ClampSpec {
			return seconds, nil
		}
		return Resolve(ClampSpec, info)
	}

	return seconds, nil
}
