package validation

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequestQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/signup?name=alice&age=30", nil)

	v, err := FromRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "alice", v.data["name"])
	// query values are always strings
	assert.Equal(t, "30", v.data["age"])
}

func TestFromRequestForm(t *testing.T) {
	form := url.Values{}
	form.Set("user_name", "alice")
	form.Set("email", "alice@example.com")

	r := httptest.NewRequest("POST", "/signup", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	v, err := FromRequest(r)
	require.NoError(t, err)

	require.NoError(t, v.Validate(Rules{
		"user_name": "required|alfa",
		"email":     "required|email",
	}))
	assert.True(t, v.Passed())
}

func TestFromRequestJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup?name=from_query", strings.NewReader(`{"name": "alice", "agree": true}`))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	v, err := FromRequest(r)
	require.NoError(t, err)

	// body wins over query on key collision
	assert.Equal(t, "alice", v.data["name"])
	assert.Equal(t, true, v.data["agree"])
}

func TestFromRequestRestoresJSONBody(t *testing.T) {
	payload := `{"name": "alice"}`
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(payload))
	r.Header.Set("Content-Type", "application/json")

	_, err := FromRequest(r)
	require.NoError(t, err)

	body, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestFromRequestIgnoresOtherBodies(t *testing.T) {
	r := httptest.NewRequest("POST", "/upload?name=alice", strings.NewReader("raw bytes"))
	r.Header.Set("Content-Type", "application/octet-stream")

	v, err := FromRequest(r)
	require.NoError(t, err)

	assert.Equal(t, "alice", v.data["name"])
	assert.Len(t, v.data, 1)
}

func TestFromRequestEndToEnd(t *testing.T) {
	r := httptest.NewRequest("POST", "/signup", strings.NewReader(`{"email": "nope", "terms": "on"}`))
	r.Header.Set("Content-Type", "application/json")

	v, err := FromRequest(r)
	require.NoError(t, err)

	require.NoError(t, v.Validate(Rules{
		"email": "required|email",
		"terms": "accepted",
	}))

	assert.True(t, v.Fails())
	assert.Equal(t, "The email must be a valid email address.", v.Bag().First("email"))
	assert.False(t, v.Bag().Has("terms"))
}
