package validation

import (
	"errors"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Base error types for rule-string configuration errors. These are
// never used for validation outcomes; a failed check goes to the
// MessageBag, while these abort Validate outright.
var (
	ErrUnknownRule      = errors.New("unknown rule name in rule string")
	ErrEmptyRuleToken   = errors.New("empty rule token in rule string")
	ErrMissingRuleParam = errors.New("rule requires a parameter but none was given")
	ErrInvalidRuleParam = errors.New("rule parameter is invalid")
	ErrFieldNotFound    = errors.New("rule references a field missing from the data")
)

///////////////////////////////////////////////////////////////////////////////
// Rule grammar
///////////////////////////////////////////////////////////////////////////////

// ruleInvocation is one token of a rule string: a rule name plus an
// optional parameter.
//
// Rule string grammar:
//
//	rule_string: rule_token ['|' rule_token]^*
//	rule_token:  rule_name [':' rule_param]
//
// Only the first ':' in a token separates the name from the
// parameter, so a parameter may itself contain ':' (a regex pattern,
// for instance). A parameter can never contain '|'.
type ruleInvocation struct {
	Name     string
	Param    string
	HasParam bool
}

// parseRuleString splits a pipe-delimited rule string into its
// ordered invocations.
func parseRuleString(ruleString string) ([]ruleInvocation, error) {
	tokens := strings.Split(ruleString, RuleSeparator)
	invocations := make([]ruleInvocation, 0, len(tokens))

	for _, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyRuleToken, ruleString)
		}
		name, param, found := strings.Cut(token, RuleParamSeparator)
		invocations = append(invocations, ruleInvocation{
			Name:     name,
			Param:    param,
			HasParam: found,
		})
	}

	return invocations, nil
}

///////////////////////////////////////////////////////////////////////////////
// Chain compilation
///////////////////////////////////////////////////////////////////////////////

// checkFn is one compiled check. It records validation failures on the
// validator's bag and returns an error only for configuration problems
// that can't be seen until execution (a same/confirmed reference to a
// field absent from the data).
type checkFn func(v *Validator, field string) error

// ruleDef describes one entry of the fixed catalog: whether the rule
// takes a parameter, and how to bind an invocation's parameter into a
// checkFn. Parameterless rules receive and ignore any parameter the
// token happened to carry.
type ruleDef struct {
	needsParam bool
	compile    func(param string) (checkFn, error)
}

// ruleChain is a compiled rule string: the ordered checks for one
// field. Every check runs even after earlier ones have failed; there
// is no short-circuit between rules.
type ruleChain struct {
	checks []compiledCheck
}

type compiledCheck struct {
	name  string
	check checkFn
}

// compileChain parses a rule string and resolves every invocation
// against the catalog. Unknown rule names, missing parameters, and
// malformed parameters (non-numeric min/max, invalid regex) are all
// rejected here, before any check runs.
func compileChain(ruleString string) (*ruleChain, error) {
	invocations, err := parseRuleString(ruleString)
	if err != nil {
		return nil, err
	}

	chain := &ruleChain{checks: make([]compiledCheck, 0, len(invocations))}
	for _, inv := range invocations {
		def, ok := catalog[inv.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, inv.Name)
		}
		if def.needsParam && inv.Param == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingRuleParam, inv.Name)
		}

		check, err := def.compile(inv.Param)
		if err != nil {
			return nil, err
		}
		chain.checks = append(chain.checks, compiledCheck{name: inv.Name, check: check})
	}

	return chain, nil
}

// run executes every check of the chain, in written order, against
// one field.
func (rc *ruleChain) run(v *Validator, field string) error {
	for _, c := range rc.checks {
		if err := c.check(v, field); err != nil {
			return fmt.Errorf("rule %s: %w", c.name, err)
		}
	}
	return nil
}
