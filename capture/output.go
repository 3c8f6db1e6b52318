package capture

import (
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// IndexPlaceholder is substituted by ffmpeg with 1, 2, 3... for each frame.
const IndexPlaceholder = "%d"

// directivePattern matches printf integer directives ("%d", "%03d") and the
// "%%" escape understood by ffmpeg's image2 muxer.
var directivePattern = regexp.MustCompile(`%%|%\d*d`)

// HasIndexPlaceholder reports whether path contains an integer directive.
func HasIndexPlaceholder(path string) bool {
	for _, match := range directivePattern.FindAllString(path, -1) {
		if match != "%%" {
			return true
		}
	}
	return false
}

// derivedOutput builds "<dir>/<name>-<suffix>.jpg" next to input.
func derivedOutput(input, suffix string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(input), name+"-"+suffix+".jpg")
}

// globPattern turns an output path or pattern into a filepath.Glob pattern:
// integer directives become "*", "%%" becomes "%", and everything else
// matches literally.
func globPattern(output string) string {
	var b strings.Builder

	last := 0
	for _, loc := range directivePattern.FindAllStringIndex(output, -1) {
		b.WriteString(escapeGlob(output[last:loc[0]]))
		if output[loc[0]:loc[1]] == "%%" {
			b.WriteString("%")
		} else {
			b.WriteString("*")
		}
		last = loc[1]
	}
	b.WriteString(escapeGlob(output[last:]))

	return b.String()
}

// escapeGlob quotes filepath.Match metacharacters. Backslash is the path
// separator on Windows and cannot escape there.
func escapeGlob(literal string) string {
	if runtime.GOOS == "windows" {
		return literal
	}

	var b strings.Builder
	for _, r := range literal {
		switch r {
		case '*', '?', '[', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// collectOutputs returns the files on disk matching output. Order follows
// filepath.Glob and callers must not treat it as frame order.
func collectOutputs(output string) ([]string, error) {
	return filepath.Glob(globPattern(output))
}
