package match

import (
	"regexp"
	"strings"
)

// NameNormalizer reduces a display name to the key duplicate grouping is
// performed on. Implementations must be deterministic; an empty result
// excludes the name from grouping.
type NameNormalizer interface {
	Normalize(name string) string
}

var (
	stopPrefixRe = regexp.MustCompile(`^(has|is|of|to|for|with|by)_?`)
	stopSuffixRe = regexp.MustCompile(`_?(state|type|system|method|property)$`)
)

// StopTokenNormalizer lowercases a name and strips one leading and one
// trailing naming-convention token, so hasDrowsinessState and DrowsinessType
// both reduce to "drowsiness".
type StopTokenNormalizer struct{}

func (StopTokenNormalizer) Normalize(name string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	name = stopPrefixRe.ReplaceAllString(name, "")
	name = stopSuffixRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
