package validation

import (
	"fmt"
	"slices"
)

///////////////////////////////////////////////////////////////////////////////
// Validator Impl.
///////////////////////////////////////////////////////////////////////////////

// Data is the input under validation: field name to scalar value
// (string, bool, or numeric). A field absent from the map counts as
// absent for every rule.
type Data map[string]any

// Rules maps a field name to its pipe-delimited rule string, e.g.
//
//	Rules{"password": "required|strong|same:password_confirm"}
type Rules map[string]string

// Validator runs the fixed rule catalog over one Data set and
// accumulates rendered messages in a MessageBag.
//
// Validation failures are never returned as errors; they are recorded
// in the bag and read back through Passed, Errors, and All.
// Configuration errors (an unknown rule name, a missing or malformed
// rule parameter, a same/confirmed reference to a field absent from
// the data) abort Validate with a wrapped sentinel error.
//
// A Validator owns its data and bag and mutates the bag in place; it
// is not safe for concurrent use. Give each goroutine its own
// instance.
type Validator struct {
	data Data
	bag  *MessageBag
}

// New creates a Validator over data with an empty message bag.
func New(data Data) *Validator {
	if data == nil {
		data = Data{}
	}
	return &Validator{data: data, bag: NewMessageBag()}
}

// Validate runs every rule of every field against the data. Fields
// are processed in sorted name order (Go maps carry no order of their
// own); the rules of a field run in written pipe order, all of them,
// even after earlier ones have failed.
//
// The bag is never reset: a second Validate call on the same instance
// appends to whatever the first call recorded.
//
// A non-nil return is always a configuration error. The run stops at
// the offending field; failures recorded before that point stay in
// the bag.
func (v *Validator) Validate(rules Rules) error {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		chain, err := compiledChains.getOrCompile(rules[field])
		if err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
		if err := chain.run(v, field); err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
	}
	return nil
}

// Passed reports whether no field has recorded any error. Callers
// must check it (or Fails) before trusting the data; Validate itself
// never signals validation failure.
func (v *Validator) Passed() bool {
	return v.bag.IsEmpty()
}

// Fails is the negation of Passed.
func (v *Validator) Fails() bool {
	return !v.bag.IsEmpty()
}

// Errors returns the recorded messages grouped by field. The map is
// the live store, not a copy.
func (v *Validator) Errors() map[string][]string {
	return v.bag.Messages()
}

// All returns every recorded message as one flat slice: fields in the
// order they first failed, messages in the order the rules ran.
func (v *Validator) All() []string {
	return v.bag.All()
}

// Bag returns the underlying message bag.
func (v *Validator) Bag() *MessageBag {
	return v.bag
}

// addError renders the message registered under key and records it
// against field.
func (v *Validator) addError(field, key, param string) {
	v.bag.Add(field, renderMessage(key, field, param))
}
