package validation

import "github.com/tidwall/gjson"

// FromJSON builds a Validator from the top-level members of a JSON
// object. Strings, booleans, and numbers map onto the scalar value
// model (numbers arrive as float64). Null members count as absent;
// nested objects and arrays sit outside the value model and are
// skipped, since nested field validation is not supported.
func FromJSON(body []byte) *Validator {
	return New(jsonData(body))
}

// jsonData extracts the scalar top-level members of a JSON document.
func jsonData(body []byte) Data {
	data := Data{}
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.String:
			data[key.String()] = value.Str
		case gjson.True:
			data[key.String()] = true
		case gjson.False:
			data[key.String()] = false
		case gjson.Number:
			data[key.String()] = value.Num
		}
		return true
	})
	return data
}
