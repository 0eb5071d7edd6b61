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

package handler

import (
	"bytes"
	"html/template"

	"github.com/caiflower/httpfs/web/protocol"
)

var postEchoTemplate = template.Must(template.New("postEcho").Parse(
	"<html><body><h1>Received POST request</h1><p>Body: {{.}}</p></body></html>"))

// POST回显请求体，body经过html/template转义
func (h *Handler) handlePost(req *protocol.Request) *protocol.Response {
	resp := protocol.NewResponse(req.Version, protocol.StatusOK, req.Route)

	var buf bytes.Buffer
	if err := postEchoTemplate.Execute(&buf, req.Body); err != nil {
		h.logger.Error("render post echo failed: %s", err.Error())
		resp.Status = protocol.StatusInternalServerError
		resp.AddHeader("Content-Type", "text/plain")
		resp.SetBody([]byte("An error occurred"))
		return resp
	}

	resp.AddHeader("Content-Type", "text/html")
	resp.SetBody(buf.Bytes())
	return resp
}
