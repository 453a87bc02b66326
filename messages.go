package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// messageCatalog maps a message key (normally the rule name) to its
// template. The catalog is a process-wide constant; nothing mutates it
// after init.
//
// Templates carry at most two placeholders and rendering is strictly
// positional: the first placeholder takes the field name, the second
// takes the rule's parameter or compared field, whatever the
// placeholders are called. A template written with the slots in the
// other order would render the other way around.
var messageCatalog = map[string]string{
	RequiredRule:     "The :attribute field is required.",
	StringMessageKey: "The :attribute must be a string.",
	StrongRule:       "The :attribute is not strong enough.",
	MinRule:          "The :attribute must be at least :min characters.",
	MaxRule:          "The :attribute must be less :max characters.",
	EmailRule:        "The :attribute must be a valid email address.",
	AlfaNumRule:      "The :attribute may only contain letters and numbers.",
	ConfirmedRule:    "The :attribute confirmation does not match.",
	SameRule:         "The :attribute and :other must match.",
	AcceptedRule:     "The :attribute must be accepted.",
	URLRule:          "The :attribute format is invalid.",
	RegexRule:        "The :attribute format is invalid.",
	IPRule:           "The :attribute must be a valid IP address.",
	BooleanRule:      "The :attribute field must be true or false.",
}

var placeholderRegex = regexp.MustCompile(`:[a-z_]+`)

// template is a message template precompiled into literal and
// placeholder segments, resolved by position at render time.
type template struct {
	segments []segment
}

type segment struct {
	literal     string
	placeholder bool
}

var templates = make(map[string]*template, len(messageCatalog))

func init() {
	for key, raw := range messageCatalog {
		templates[key] = compileTemplate(raw)
	}
}

func compileTemplate(raw string) *template {
	tpl := &template{}
	last := 0
	for _, span := range placeholderRegex.FindAllStringIndex(raw, -1) {
		if span[0] > last {
			tpl.segments = append(tpl.segments, segment{literal: raw[last:span[0]]})
		}
		tpl.segments = append(tpl.segments, segment{placeholder: true})
		last = span[1]
	}
	if last < len(raw) {
		tpl.segments = append(tpl.segments, segment{literal: raw[last:]})
	}
	return tpl
}

// renderMessage fills the template registered under key: the first
// placeholder gets the field name, any further placeholder gets param.
func renderMessage(key, field, param string) string {
	tpl, ok := templates[key]
	if !ok {
		// The catalog is closed and built at init; a rule without a
		// message is a bug in this package, not caller input.
		panic(fmt.Sprintf("validation: no message template for key %q", key))
	}

	var sb strings.Builder
	seen := 0
	for _, seg := range tpl.segments {
		if !seg.placeholder {
			sb.WriteString(seg.literal)
			continue
		}
		if seen == 0 {
			sb.WriteString(field)
		} else {
			sb.WriteString(param)
		}
		seen++
	}
	return sb.String()
}
