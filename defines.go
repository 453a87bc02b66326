package validation

import "regexp"

// Rule name constants for the built-in catalog.
const (
	RequiredRule  = "required"
	StrongRule    = "strong"
	MinRule       = "min"
	MaxRule       = "max"
	EmailRule     = "email"
	AlfaRule      = "alfa"
	AlfaNumRule   = "alfa_num"
	ConfirmedRule = "confirmed"
	SameRule      = "same"
	AcceptedRule  = "accepted"
	URLRule       = "url"
	RegexRule     = "regex"
	IPRule        = "ip"
	BooleanRule   = "boolean"
)

// StringMessageKey is the reserved "must be a string" message. No rule
// is named "string"; the alfa rule renders this message on failure.
const StringMessageKey = "string"

// Separator constants for the rule-string grammar.
const (
	RuleSeparator      = "|"
	RuleParamSeparator = ":"
)

// ConfirmationField is the fixed key the confirmed rule compares
// against.
const ConfirmationField = "password_confirmation"

// Content type constants for the HTTP request source.
const (
	ContentTypeApplicationJSON = "application/json"
	ContentTypeFormURLEncoded  = "application/x-www-form-urlencoded"
	ContentTypeDelimiter       = ";"
)

// Character-class patterns shared by the alfa and alfa_num rules. Both
// reject the empty string, which is why those two rules fail on empty
// values while the rest of the catalog passes vacuously.
var (
	alfaRegex    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alfaNumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// acceptedValues is the exact token set the accepted rule allows.
// Matching is strict: "Yes" and the integer 1 do not count.
var acceptedValues = []any{"1", "yes", true, "on"}

// booleanValues is the token set the boolean rule allows. JSON numbers
// decode as float64, so both numeric forms are listed.
var booleanValues = []any{true, false, 1, 0, float64(1), float64(0), "1", "0"}
