package validation

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ExampleUsage walks the validator through a typical signup payload.
// It is a demo driver, not part of the library contract.
func ExampleUsage() {
	// Example 1: signup form data
	fmt.Println("=== Example 1: Signup form ===")

	v := New(Data{
		"user_name":             "alice",
		"email":                 "alice@example",
		"password":              "hunter2",
		"password_confirmation": "hunter22",
		"terms":                 "on",
		"api_token":             uuid.NewString(),
	})

	err := v.Validate(Rules{
		"user_name": "required|alfa|min:2|max:50",
		"email":     "required|email",
		"password":  "required|strong|confirmed",
		"terms":     "accepted",
	})
	if err != nil {
		log.Fatalf("bad rule configuration: %v", err)
	}

	if v.Fails() {
		for _, message := range v.All() {
			fmt.Println(message)
		}
	}

	// Example 2: same engine over a raw JSON document
	fmt.Println("=== Example 2: JSON body ===")

	jv := FromJSON([]byte(`{
		"homepage": "https://example.com",
		"server":   "10.0.0.256",
		"agree":    1
	}`))

	err = jv.Validate(Rules{
		"homepage": "url",
		"server":   "ip",
		"agree":    "accepted",
	})
	if err != nil {
		log.Fatalf("bad rule configuration: %v", err)
	}

	fmt.Printf("passed: %v\n", jv.Passed())
	fmt.Printf("server errors: %v\n", jv.Errors()["server"])
}
