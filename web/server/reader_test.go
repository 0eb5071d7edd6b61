package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadRequestHeadersOnly(t *testing.T) {
	raw := "GET /a.txt HTTP/1.1\r\nHost: localhost\r\n\r\n"
	got, err := readRequest(strings.NewReader(raw), 1024)
	assert.Nil(t, err)
	assert.Equal(t, raw, string(got))
}

func TestReadRequestWithBody(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"
	got, err := readRequest(strings.NewReader(raw), 1024)
	assert.Nil(t, err)
	assert.Equal(t, raw, string(got))
}

func TestReadRequestIgnoresPipelinedBytes(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\ncontent-length: 5\r\n\r\nhello"
	got, err := readRequest(strings.NewReader(raw+"EXTRA"), 1024)
	assert.Nil(t, err)
	assert.Equal(t, raw, string(got))
}

func TestReadRequestHeadersTooLarge(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nX-Pad: " + strings.Repeat("a", 200) + "\r\n\r\n"
	_, err := readRequest(strings.NewReader(raw), 64)
	assert.Equal(t, ErrRequestTooLarge, err)
}

func TestReadRequestBodyTooLarge(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nContent-Length: 999999\r\n\r\n"
	_, err := readRequest(strings.NewReader(raw), 128)
	assert.Equal(t, ErrRequestTooLarge, err)
}

func TestReadRequestClientClosesEarly(t *testing.T) {
	raw := "POST /echo HTTP/1.1\r\nContent-Length: 10\r\n\r\nhalf"
	got, err := readRequest(strings.NewReader(raw), 1024)
	assert.Nil(t, err)
	assert.Equal(t, raw, string(got))
}

func TestReadRequestEmpty(t *testing.T) {
	_, err := readRequest(strings.NewReader(""), 1024)
	assert.NotNil(t, err)
}

func TestContentLength(t *testing.T) {
	assert.Equal(t, 5, contentLength([]byte("POST / HTTP/1.1\r\nContent-Length: 5\r\n\r\n")))
	assert.Equal(t, 5, contentLength([]byte("POST / HTTP/1.1\r\nCONTENT-LENGTH:5\r\n\r\n")))
	assert.Equal(t, -1, contentLength([]byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")))
	assert.Equal(t, -1, contentLength([]byte("POST / HTTP/1.1\r\nContent-Length: nan\r\n\r\n")))
}
