package turtle

import (
	"regexp"
	"strings"
)

var (
	fenceRe       = regexp.MustCompile("(?m)^```(?:turtle|ttl)?\\s*$")
	byteMarkerRe  = regexp.MustCompile(`b(['"])`)
	trailingWSRe  = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
	doubleSemiRe  = regexp.MustCompile(`;\s*;`)
	doubleDotRe   = regexp.MustCompile(`\.\s*\.(\s*\n)`)
	caretQuirkRe  = regexp.MustCompile(`"([^"]*)"\^{2,}b?'?([A-Za-z]+:[A-Za-z][A-Za-z0-9]*)`)
	prefixStartRe = regexp.MustCompile(`(?m)^\s*@prefix\s`)
)

// Repair cleans the common defects of model-generated Turtle: markdown
// fences, leading prose before the first prefix declaration, python byte
// string markers, doubled punctuation, and mangled datatype annotations.
// The result is not guaranteed to parse; callers should still decode and
// retry on failure.
func Repair(content string) string {
	content = fenceRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// Drop any explanation text the model emitted before the document.
	if loc := prefixStartRe.FindStringIndex(content); loc != nil && loc[0] > 0 {
		content = content[loc[0]:]
	}

	content = byteMarkerRe.ReplaceAllString(content, "$1")
	content = caretQuirkRe.ReplaceAllString(content, `"$1"^^$2`)
	content = doubleSemiRe.ReplaceAllString(content, ";")
	content = doubleDotRe.ReplaceAllString(content, ".$1")
	content = trailingWSRe.ReplaceAllString(content, "")
	content = blankRunRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content) + "\n"
}
