package protocol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseRequest(t *testing.T) {
	raw := "GET /static/index.html HTTP/1.1\r\nHost: localhost:5500\r\nAccept: */*\r\n\r\n"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, MethodGet, req.Method)
	assert.Equal(t, "static/index.html", req.Route)
	assert.Equal(t, VersionHTTP11, req.Version)
	assert.Equal(t, "", req.Body)

	want := map[string]string{
		"Host":   "localhost:5500",
		"Accept": "*/*",
	}
	if diff := cmp.Diff(want, req.Headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRequestBody(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nContent-Length: 11\r\n\r\nhello world"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "hello world", req.Body)
}

func TestParseRequestMethodCaseInsensitive(t *testing.T) {
	raw := "get / HTTP/1.1\r\n\r\n"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, MethodGet, req.Method)
}

func TestParseRequestStripsOneLeadingSlash(t *testing.T) {
	raw := "GET //double HTTP/1.1\r\n\r\n"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, "/double", req.Route)
}

func TestParseRequestHeaderTrimAndOverwrite(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nX-Key:  first  \r\nX-Key: second\r\n\r\n"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, "second", req.Headers["X-Key"])
	assert.Equal(t, 1, len(req.Headers))
}

func TestParseRequestFailures(t *testing.T) {
	cases := []string{
		"GET /\r\n\r\n",                     // two tokens
		"GET / HTTP/1.1 extra\r\n\r\n",      // four tokens
		"FOOBAR / HTTP/1.1\r\n\r\n",         // unknown method
		"GET / HTTP/1.0\r\n\r\n",            // unknown version
		"GET / http/1.1\r\n\r\n",            // version is case sensitive
		"GET / HTTP/1.1\r\nno-colon-here\r\n\r\n", // malformed header
		"GET / HTTP/1.1",                    // no line terminator at all
		"",                                  // empty buffer
	}

	for _, raw := range cases {
		_, err := ParseRequest([]byte(raw))
		assert.NotNil(t, err, "expected failure for %q", raw)
	}
}

func TestParseRequestVersionHTTP20(t *testing.T) {
	raw := "GET / HTTP/2.0\r\n\r\n"
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, VersionHTTP20, req.Version)
}

func TestParseRequestRoundTrip(t *testing.T) {
	body := "a=1&b=2"
	raw := "POST /submit HTTP/1.1\r\nContent-Type: application/x-www-form-urlencoded\r\nContent-Length: 7\r\n\r\n" + body
	req, err := ParseRequest([]byte(raw))
	assert.Nil(t, err)
	assert.Equal(t, MethodPost, req.Method)
	assert.Equal(t, "submit", req.Route)
	assert.Equal(t, VersionHTTP11, req.Version)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Headers["Content-Type"])
	assert.Equal(t, body, req.Body)
}
