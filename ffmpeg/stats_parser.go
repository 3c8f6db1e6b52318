// Package ffmpeg reads ffmpeg's own console output.
package ffmpeg

import (
	"regexp"
	"strconv"
	"strings"
)

// Stats is the last statistics line ffmpeg printed, e.g.
//
//	frame=    1 fps=0.0 q=4.3 Lsize=N/A time=00:00:00.04 bitrate=N/A speed=0.52x
type Stats struct {
	Frame   int64   `json:"frame"`
	FPS     float64 `json:"fps"`
	Size    string  `json:"size,omitempty"`
	Time    string  `json:"time,omitempty"`
	Bitrate string  `json:"bitrate,omitempty"`
	Speed   float64 `json:"speed"`
}

// StatsParser extracts Stats from ffmpeg stderr.
type StatsParser struct {
	frameRegex   *regexp.Regexp
	fpsRegex     *regexp.Regexp
	sizeRegex    *regexp.Regexp
	timeRegex    *regexp.Regexp
	bitrateRegex *regexp.Regexp
	speedRegex   *regexp.Regexp
}

// NewStatsParser creates a new parser for ffmpeg statistics output
func NewStatsParser() *StatsParser {
	return &StatsParser{
		// Match both "frame=123" and "frame= 123" formats
		frameRegex:   regexp.MustCompile(`(?:^|\s)frame=\s*(\d+)`),
		fpsRegex:     regexp.MustCompile(`(?:^|\s)fps=\s*([0-9.]+)`),
		sizeRegex:    regexp.MustCompile(`(?:^|\s)L?size=\s*([0-9]+)`),
		timeRegex:    regexp.MustCompile(`(?:^|\s)time=\s*([0-9:.]+)`),
		bitrateRegex: regexp.MustCompile(`(?:^|\s)bitrate=\s*([0-9.]+)`),
		speedRegex:   regexp.MustCompile(`(?:^|\s)speed=\s*([0-9.]+)x?`),
	}
}

// ParseLine parses a single line of ffmpeg output into stats.
// It reports whether the line carried any statistics.
func (sp *StatsParser) ParseLine(line string, stats *Stats) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	updated := false

	if matches := sp.frameRegex.FindStringSubmatch(line); len(matches) > 1 {
		if frame, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			stats.Frame = frame
			updated = true
		}
	}

	if matches := sp.fpsRegex.FindStringSubmatch(line); len(matches) > 1 {
		if fps, err := strconv.ParseFloat(matches[1], 64); err == nil {
			stats.FPS = fps
			updated = true
		}
	}

	if matches := sp.sizeRegex.FindStringSubmatch(line); len(matches) > 1 {
		stats.Size = matches[1] + "kB"
		updated = true
	}

	if matches := sp.timeRegex.FindStringSubmatch(line); len(matches) > 1 {
		stats.Time = matches[1]
		updated = true
	}

	if matches := sp.bitrateRegex.FindStringSubmatch(line); len(matches) > 1 {
		stats.Bitrate = matches[1] + "kbits/s"
		updated = true
	}

	if matches := sp.speedRegex.FindStringSubmatch(line); len(matches) > 1 {
		if speed, err := strconv.ParseFloat(matches[1], 64); err == nil {
			stats.Speed = speed
			updated = true
		}
	}

	return updated
}

// Parse scans the whole captured output. ffmpeg rewrites its stats line with
// \r, so both \r and \n separate lines; later lines win.
func (sp *StatsParser) Parse(output []byte) (Stats, bool) {
	var stats Stats
	found := false

	lines := strings.FieldsFunc(string(output), func(r rune) bool {
		return r == '\r' || r == '\n'
	})
	for _, line := range lines {
		if sp.ParseLine(line, &stats) {
			found = true
		}
	}

	return stats, found
}

// ParseStats parses output with a fresh StatsParser.
func ParseStats(output []byte) (Stats, bool) {
	return NewStatsParser().Parse(output)
}
