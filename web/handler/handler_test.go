package handler

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/caiflower/httpfs/web/protocol"
)

func newGet(route string) *protocol.Request {
	return &protocol.Request{
		Method:  protocol.MethodGet,
		Route:   route,
		Version: protocol.VersionHTTP11,
		Headers: map[string]string{},
	}
}

func TestHandleFile(t *testing.T) {
	root := t.TempDir()
	content := []byte("<html><body>hello</body></html>")
	assert.Nil(t, os.WriteFile(filepath.Join(root, "index.html"), content, 0644))

	h := New(Config{RootDir: root}, nil)
	resp := h.Handle(newGet("index.html"))

	assert.Equal(t, protocol.StatusOK, resp.Status)
	assert.Equal(t, "text/html", resp.Header("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(content)), resp.Header("Content-Length"))
	assert.Equal(t, content, resp.Body())
	assert.Equal(t, "bytes", resp.Header("Accept-Ranges"))
}

func TestHandleMissingFile(t *testing.T) {
	h := New(Config{RootDir: t.TempDir()}, nil)
	resp := h.Handle(newGet("nope.txt"))

	assert.Equal(t, protocol.StatusNotFound, resp.Status)
	assert.Equal(t, []byte("File not found"), resp.Body())
}

func TestHandleTraversal(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "srv")
	assert.Nil(t, os.Mkdir(root, 0755))
	assert.Nil(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("secret"), 0644))

	h := New(Config{RootDir: root}, nil)
	resp := h.Handle(newGet("../secret.txt"))

	assert.Equal(t, protocol.StatusForbidden, resp.Status)
}

func TestHandleDirectoryListing(t *testing.T) {
	root := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0644))
	assert.Nil(t, os.Mkdir(filepath.Join(root, "sub"), 0755))

	h := New(Config{RootDir: root}, nil)
	resp := h.Handle(newGet(""))

	assert.Equal(t, protocol.StatusOK, resp.Status)
	assert.Equal(t, "text/html", resp.Header("Content-Type"))

	body := string(resp.Body())
	assert.Contains(t, body, `<span class="file-icon"></span>a.txt`)
	assert.Contains(t, body, `<span class="folder-icon"></span>sub`)
	// 根目录没有上级目录链接
	assert.NotContains(t, body, "Parent Directory")
}

func TestHandleSubDirectoryListingHasParentLink(t *testing.T) {
	root := t.TempDir()
	assert.Nil(t, os.Mkdir(filepath.Join(root, "sub"), 0755))

	h := New(Config{RootDir: root}, nil)
	resp := h.Handle(newGet("sub"))

	assert.Equal(t, protocol.StatusOK, resp.Status)
	body := string(resp.Body())
	assert.Contains(t, body, `class="parent-dir"`)
	assert.Contains(t, body, "Parent Directory")
}

func TestHandleListingEscapesNames(t *testing.T) {
	root := t.TempDir()
	name := "a<b>.txt"
	if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0644); err != nil {
		t.Skipf("filesystem rejects name %q: %s", name, err)
	}

	h := New(Config{RootDir: root}, nil)
	resp := h.Handle(newGet(""))

	body := string(resp.Body())
	assert.Contains(t, body, "a&lt;b&gt;.txt")
	assert.NotContains(t, body, "<b>.txt")
}

func TestHandlePostEcho(t *testing.T) {
	h := New(Config{RootDir: t.TempDir()}, nil)
	req := &protocol.Request{
		Method:  protocol.MethodPost,
		Route:   "echo",
		Version: protocol.VersionHTTP11,
		Headers: map[string]string{},
		Body:    "hello post",
	}
	resp := h.Handle(req)

	assert.Equal(t, protocol.StatusOK, resp.Status)
	assert.Equal(t, "text/html", resp.Header("Content-Type"))
	body := string(resp.Body())
	assert.Contains(t, body, "Received POST request")
	assert.Contains(t, body, "hello post")
}

func TestHandlePostEchoEscapesHTML(t *testing.T) {
	h := New(Config{RootDir: t.TempDir()}, nil)
	req := &protocol.Request{
		Method:  protocol.MethodPost,
		Route:   "echo",
		Version: protocol.VersionHTTP11,
		Headers: map[string]string{},
		Body:    "<script>alert(1)</script>",
	}
	resp := h.Handle(req)

	body := string(resp.Body())
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestHandleUnsupportedMethod(t *testing.T) {
	h := New(Config{RootDir: t.TempDir()}, nil)
	req := &protocol.Request{
		Method:  protocol.MethodPut,
		Route:   "x",
		Version: protocol.VersionHTTP11,
		Headers: map[string]string{},
	}
	resp := h.Handle(req)

	assert.Equal(t, protocol.StatusBadRequest, resp.Status)
	assert.Equal(t, 0, len(resp.Body()))
	assert.Equal(t, "x", resp.Path)
}

func TestHandleFileCache(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "c.txt")
	assert.Nil(t, os.WriteFile(path, []byte("old"), 0644))

	h := New(Config{RootDir: root, FileCacheTTL: time.Minute}, nil)
	resp := h.Handle(newGet("c.txt"))
	assert.Equal(t, []byte("old"), resp.Body())

	assert.Nil(t, os.WriteFile(path, []byte("new"), 0644))
	resp = h.Handle(newGet("c.txt"))
	assert.Equal(t, []byte("old"), resp.Body())
}
