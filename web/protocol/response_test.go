package protocol

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseSerialize(t *testing.T) {
	resp := NewResponse(VersionHTTP11, StatusOK, "/index.html")
	resp.AddHeader("Content-Type", "text/html")
	body := []byte("<html>hi</html>")
	resp.SetBody(body)

	out := string(resp.Serialize())

	assert.True(t, strings.HasPrefix(out, "HTTP/1.1 200 OK\r\n"))
	assert.Contains(t, out, "accept-ranges: bytes\r\n")
	assert.Contains(t, out, "content-type: text/html\r\n")
	assert.Contains(t, out, "content-length: "+strconv.Itoa(len(body))+"\r\n")

	// body恰好是空行之后的内容，没有追加终结符
	i := strings.Index(out, "\r\n\r\n")
	assert.True(t, i >= 0)
	assert.Equal(t, string(body), out[i+4:])
}

func TestResponseHeaderOverwrite(t *testing.T) {
	resp := NewResponse(VersionHTTP11, StatusOK, "x")
	resp.AddHeader("Content-Type", "text/plain")
	resp.AddHeader("content-TYPE", "text/html")

	assert.Equal(t, "text/html", resp.Header("Content-Type"))

	out := string(resp.Serialize())
	assert.Equal(t, 1, strings.Count(out, "content-type:"))
}

func TestResponseContentLengthTracksBody(t *testing.T) {
	resp := NewResponse(VersionHTTP11, StatusOK, "x")
	resp.SetBody([]byte("12345"))
	assert.Equal(t, "5", resp.Header("Content-Length"))
	resp.SetBody([]byte{})
	assert.Equal(t, "0", resp.Header("Content-Length"))
}

func TestResponsePathStripsLeadingSlash(t *testing.T) {
	resp := NewResponse(VersionHTTP11, StatusNotFound, "/missing.txt")
	assert.Equal(t, "missing.txt", resp.Path)
}

func TestStatusReason(t *testing.T) {
	assert.Equal(t, "200 OK", StatusOK.String())
	assert.Equal(t, "400 Bad Request", StatusBadRequest.String())
	assert.Equal(t, "403 Forbidden", StatusForbidden.String())
	assert.Equal(t, "404 Not Found", StatusNotFound.String())
	assert.Equal(t, "413 Payload Too Large", StatusPayloadTooLarge.String())
	assert.Equal(t, "500 Internal Server Error", StatusInternalServerError.String())
}

func TestResponseDiagnostic(t *testing.T) {
	resp := NewResponse(VersionHTTP11, StatusOK, "/a.txt")
	resp.SetBody([]byte("abc"))
	diag := resp.Diagnostic()
	assert.Contains(t, diag, "\"status\":200")
	assert.Contains(t, diag, "\"contentLength\":\"3\"")
	assert.Contains(t, diag, "\"path\":\"a.txt\"")
}
