package templating

import (
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	defaultStartTag = "{{"
	defaultEndTag   = "}}"
)

// ReplacePlaceholder replaces every {{key}} marker in template with
// value. The key must match exactly; whitespace inside the braces is
// significant. Markers for other keys are left untouched.
func ReplacePlaceholder(template, key, value string) string {
	// The scanner cannot see a key holding a delimiter brace;
	// match the literal marker instead.
	if strings.ContainsAny(key, "{}") {
		return strings.ReplaceAll(
			template,
			defaultStartTag+key+defaultEndTag,
			value,
		)
	}

	return expand(
		template, defaultStartTag, defaultEndTag,
		func(tag string) (string, bool) {
			if tag != key {
				return "", false
			}

			return value, true
		},
	)
}

// ReplaceMultiplePlaceholders replaces every marker whose key is present
// in values. Markers without a value are kept verbatim. Values are
// inserted as-is and never rescanned, so the result does not depend on
// map iteration order. values is only read.
func ReplaceMultiplePlaceholders(
	template string,
	values map[string]string,
) string {
	if len(values) == 0 {
		return template
	}

	return expand(
		template, defaultStartTag, defaultEndTag,
		mapLookup(values),
	)
}

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(tag string) (string, bool) {
		val, ok := values[tag]

		return val, ok
	}
}

// expand scans template once and resolves each startTag...endTag marker
// through lookup. A marker closes at the first endTag after its
// startTag; when the enclosed text holds another startTag, only the text
// after the last one is the key and everything before it is literal.
// Unresolved markers and unclosed start tags are written back unchanged.
func expand(
	template string,
	startTag string,
	endTag string,
	lookup func(tag string) (string, bool),
) string {
	if !strings.Contains(template, startTag) {
		return template
	}

	return fasttemplate.ExecuteFuncString(
		template, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			full := startTag + tag
			idx := strings.LastIndex(full, startTag)
			lead, key := full[:idx], full[idx+len(startTag):]

			val, ok := lookup(key)
			if !ok {
				val = startTag + key + endTag
			}

			return io.WriteString(w, lead+val)
		},
	)
}
