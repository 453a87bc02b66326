// Package validation provides Laravel-style input validation over a
// map of named values.
//
// Rules are written as pipe-delimited strings per field and run
// against the data a Validator was constructed with. Every listed
// rule runs in written order; failures accumulate as rendered
// messages in a per-field MessageBag instead of being returned as
// errors.
//
// Basic usage:
//
//	v := validation.New(validation.Data{
//	    "user_name": "alice",
//	    "email":     "alice@example.com",
//	})
//
//	err := v.Validate(validation.Rules{
//	    "user_name": "required|alfa|min:2|max:50",
//	    "email":     "required|email",
//	})
//	if err != nil {
//	    // configuration error: unknown rule name, missing or
//	    // malformed rule parameter, same/confirmed reference to a
//	    // field absent from the data
//	}
//
//	if v.Fails() {
//	    for field, messages := range v.Errors() {
//	        // "email" -> ["The email must be a valid email address."]
//	        _ = field
//	        _ = messages
//	    }
//	}
//
// The catalog is fixed and closed:
//   - required        - present and non-empty (PHP empty() semantics:
//     "", "0", 0, false, and empty containers all count as empty)
//   - strong          - no whitespace, at least 8 characters, with a
//     lowercase letter, an uppercase letter, and a digit
//   - min:n / max:n   - character length bounds; min is inclusive,
//     max is strict (a value of exactly n characters fails max:n)
//   - email           - RFC 5322 address with a dotted domain
//   - alfa            - ASCII letters only (empty values fail)
//   - alfa_num        - ASCII letters and digits only (empty values fail)
//   - confirmed       - equals the password_confirmation field
//   - same:other      - strictly equals the named other field
//   - accepted        - exactly "1", "yes", true, or "on"
//   - url             - URL with scheme and host
//   - regex:pattern   - matches the pattern
//   - ip              - IPv4 or IPv6 address
//   - boolean         - one of true, false, 1, 0, "1", "0"
//
// Except for required, accepted, alfa, and alfa_num, every rule
// passes vacuously when the value is empty or absent ("optional
// unless required"). Rules never short-circuit: a field listed as
// "required|alfa|min:2" with an empty value records both the required
// and the alfa message.
//
// Validators can also be built from a JSON document (FromJSON) or an
// HTTP request's query, form, and JSON body (FromRequest).
//
// Grammar limitation: only the first ':' of a rule token separates
// the rule name from its parameter, so a regex parameter may contain
// ':' freely; a parameter can never contain '|'.
package validation
