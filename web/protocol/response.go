/*
 * Copyright 2024 caiflower Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/caiflower/httpfs/pkg/tools"
)

// Response header的key统一小写存储，Content-Length由SetBody维护
type Response struct {
	Version Version
	Status  Status
	Path    string // 构造response时解析出的路径，仅用于诊断日志

	headers map[string]string
	body    []byte
}

func NewResponse(version Version, status Status, path string) *Response {
	r := &Response{
		Version: version,
		Status:  status,
		Path:    strings.TrimPrefix(path, "/"),
		headers: make(map[string]string),
	}
	r.AddHeader("Accept-Ranges", "bytes")
	return r
}

// AddHeader 相同key覆盖写
func (r *Response) AddHeader(name, value string) {
	r.headers[strings.ToLower(name)] = value
}

func (r *Response) Header(name string) string {
	return r.headers[strings.ToLower(name)]
}

func (r *Response) Headers() map[string]string {
	return r.headers
}

func (r *Response) SetBody(body []byte) {
	r.body = body
	r.AddHeader("Content-Length", strconv.Itoa(len(body)))
}

func (r *Response) Body() []byte {
	return r.body
}

// Serialize 状态行 + 头部（顺序不保证） + 空行 + body，body后不追加终结符
func (r *Response) Serialize() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %d %s\r\n", r.Version, r.Status.Code(), r.Status.Reason())
	for name, value := range r.headers {
		fmt.Fprintf(&buf, "%s: %s\r\n", name, value)
	}
	buf.WriteString("\r\n")
	buf.Write(r.body)
	return buf.Bytes()
}

// Diagnostic 单行JSON摘要，用于请求日志
func (r *Response) Diagnostic() string {
	return tools.ToJson(struct {
		Version       Version `json:"version"`
		Status        int     `json:"status"`
		ContentLength string  `json:"contentLength"`
		Path          string  `json:"path"`
	}{r.Version, r.Status.Code(), r.headers["content-length"], r.Path})
}
