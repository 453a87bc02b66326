package validation

import (
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// catalog is the closed rule set the engine dispatches on, built once
// at package load. Rule names resolve against it while compiling a
// chain; an unknown name is a configuration error, never a silent
// skip.
//
// Empty-value handling is deliberately uneven across rules: required
// and accepted always run, alfa and alfa_num reject the empty string
// through their character classes, and every other rule passes
// vacuously when the value is empty or absent. The asymmetry is kept
// rule by rule rather than unified.
var catalog = map[string]ruleDef{
	RequiredRule:  {compile: simple(checkRequired)},
	StrongRule:    {compile: simple(checkStrong)},
	MinRule:       {needsParam: true, compile: compileMin},
	MaxRule:       {needsParam: true, compile: compileMax},
	EmailRule:     {compile: simple(checkEmail)},
	AlfaRule:      {compile: simple(checkAlfa)},
	AlfaNumRule:   {compile: simple(checkAlfaNum)},
	ConfirmedRule: {compile: simple(checkConfirmed)},
	SameRule:      {needsParam: true, compile: compileSame},
	AcceptedRule:  {compile: simple(checkAccepted)},
	URLRule:       {compile: simple(checkURL)},
	RegexRule:     {needsParam: true, compile: compileRegex},
	IPRule:        {compile: simple(checkIP)},
	BooleanRule:   {compile: simple(checkBoolean)},
}

// simple adapts a parameterless check into a compile func.
func simple(fn checkFn) func(string) (checkFn, error) {
	return func(string) (checkFn, error) { return fn, nil }
}

// checkRequired fails on absent values and anything empty in the PHP
// sense: "", "0", numeric zero, false, empty containers.
func checkRequired(v *Validator, field string) error {
	if isEmpty(v.data[field]) {
		v.addError(field, RequiredRule, "")
	}
	return nil
}

// checkStrong passes empty values. Otherwise the value must contain
// no whitespace, be at least 8 characters long, and carry at least
// one lowercase letter, one uppercase letter, and one digit.
func checkStrong(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	if !strongValue(stringOf(value)) {
		v.addError(field, StrongRule, "")
	}
	return nil
}

func strongValue(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// compileMin binds an inclusive character-length lower bound: a value
// of exactly min characters passes.
func compileMin(param string) (checkFn, error) {
	min, err := lengthParam(MinRule, param)
	if err != nil {
		return nil, err
	}
	return func(v *Validator, field string) error {
		value := v.data[field]
		if isEmpty(value) {
			return nil
		}
		if utf8.RuneCountInString(stringOf(value)) < min {
			v.addError(field, MinRule, param)
		}
		return nil
	}, nil
}

// compileMax binds a strict character-length upper bound: a value of
// exactly max characters fails. min and max are not symmetric.
func compileMax(param string) (checkFn, error) {
	max, err := lengthParam(MaxRule, param)
	if err != nil {
		return nil, err
	}
	return func(v *Validator, field string) error {
		value := v.data[field]
		if isEmpty(value) {
			return nil
		}
		if utf8.RuneCountInString(stringOf(value)) >= max {
			v.addError(field, MaxRule, param)
		}
		return nil
	}, nil
}

// lengthParam parses a min/max parameter as a non-negative base-10
// integer.
func lengthParam(rule, param string) (int, error) {
	n, err := strconv.Atoi(param)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s:%s", ErrInvalidRuleParam, rule, param)
	}
	return n, nil
}

// checkEmail passes empty values; otherwise the value must parse as a
// bare RFC 5322 address with a non-empty local part and a dotted
// domain.
func checkEmail(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	if !validEmail(stringOf(value)) {
		v.addError(field, EmailRule, "")
	}
	return nil
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		// rejects display-name forms like `Alice <a@b.c>`
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// checkAlfa allows ASCII letters only. Unlike most rules it does not
// pass empty values: the character class rejects the empty string, so
// an absent field fails too. Failures render the reserved "string"
// message.
func checkAlfa(v *Validator, field string) error {
	if !alfaRegex.MatchString(stringOf(v.data[field])) {
		v.addError(field, StringMessageKey, "")
	}
	return nil
}

// checkAlfaNum allows ASCII letters and digits, at least one
// character. Empty values fail, same caveat as checkAlfa.
func checkAlfaNum(v *Validator, field string) error {
	if !alfaNumRegex.MatchString(stringOf(v.data[field])) {
		v.addError(field, AlfaNumRule, "")
	}
	return nil
}

// checkConfirmed compares the value against the fixed
// password_confirmation key. Empty values pass without looking the
// key up; a non-empty value with no confirmation key in the data is a
// configuration error.
func checkConfirmed(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	other, ok := v.data[ConfirmationField]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, ConfirmationField)
	}
	if !strictEqual(value, other) {
		v.addError(field, ConfirmedRule, "")
	}
	return nil
}

// compileSame binds a strict-equality comparison against the named
// other field. "1" and 1 do not match. A non-empty value referencing
// a field absent from the data is a configuration error.
func compileSame(param string) (checkFn, error) {
	return func(v *Validator, field string) error {
		value := v.data[field]
		if isEmpty(value) {
			return nil
		}
		other, ok := v.data[param]
		if !ok {
			return fmt.Errorf("%w: %s", ErrFieldNotFound, param)
		}
		if !strictEqual(value, other) {
			v.addError(field, SameRule, param)
		}
		return nil
	}, nil
}

// checkAccepted requires one of exactly "1", "yes", true, or "on".
// Matching is strict, so "true", "Yes", and the integer 1 all fail.
// accepted never passes vacuously: absent and empty values fail.
func checkAccepted(v *Validator, field string) error {
	value := v.data[field]
	for _, accepted := range acceptedValues {
		if strictEqual(value, accepted) {
			return nil
		}
	}
	v.addError(field, AcceptedRule, "")
	return nil
}

// checkURL passes empty values; otherwise the value must parse as a
// URL with both a scheme and a host.
func checkURL(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	if !validURL(stringOf(value)) {
		v.addError(field, URLRule, "")
	}
	return nil
}

func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// compileRegex compiles the pattern once per chain; a malformed
// pattern is a configuration error surfaced before any check runs.
func compileRegex(param string) (checkFn, error) {
	re, err := regexp.Compile(param)
	if err != nil {
		return nil, fmt.Errorf("%w: regex %q: %v", ErrInvalidRuleParam, param, err)
	}
	return func(v *Validator, field string) error {
		value := v.data[field]
		if isEmpty(value) {
			return nil
		}
		if !re.MatchString(stringOf(value)) {
			v.addError(field, RegexRule, param)
		}
		return nil
	}, nil
}

// checkIP passes empty values; otherwise the value must parse as an
// IPv4 or IPv6 address.
func checkIP(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	if net.ParseIP(stringOf(value)) == nil {
		v.addError(field, IPRule, "")
	}
	return nil
}

// checkBoolean allows the boolean-like tokens true, false, 1, 0, "1",
// and "0". The empty check already passes false, 0, and "0"; the set
// is still matched in full for the non-empty members.
func checkBoolean(v *Validator, field string) error {
	value := v.data[field]
	if isEmpty(value) {
		return nil
	}
	for _, b := range booleanValues {
		if strictEqual(value, b) {
			return nil
		}
	}
	v.addError(field, BooleanRule, "")
	return nil
}
