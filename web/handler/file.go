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
	"os"

	"github.com/caiflower/httpfs/web/protocol"
)

type cachedFile struct {
	content     []byte
	contentType string
}

// 文件整体读入内存后返回，不支持大文件流式传输
func (h *Handler) handleFile(req *protocol.Request, path string) *protocol.Response {
	resp := protocol.NewResponse(req.Version, protocol.StatusOK, path)

	if h.cache != nil {
		if v, ok := h.cache.Get(path); ok {
			cf := v.(cachedFile)
			resp.AddHeader("Content-Type", cf.contentType)
			resp.SetBody(cf.content)
			return resp
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		resp.AddHeader("Content-Type", "text/plain")
		switch {
		case os.IsPermission(err):
			h.logger.Warn("read file %s failed: %s", path, err.Error())
			resp.Status = protocol.StatusForbidden
			resp.SetBody([]byte("Access denied"))
		case os.IsNotExist(err):
			resp.Status = protocol.StatusNotFound
			resp.SetBody([]byte("File not found"))
		default:
			h.logger.Error("read file %s failed: %s", path, err.Error())
			resp.Status = protocol.StatusInternalServerError
			resp.SetBody([]byte("An error occurred"))
		}
		return resp
	}

	contentType := h.detector.Detect(content, path)
	resp.AddHeader("Content-Type", contentType)
	resp.SetBody(content)

	if h.cache != nil {
		h.cache.Set(path, cachedFile{content: content, contentType: contentType})
	}
	return resp
}
