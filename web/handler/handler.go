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
	"time"

	"github.com/caiflower/httpfs/pkg/cache"
	"github.com/caiflower/httpfs/pkg/logger"
	"github.com/caiflower/httpfs/web/mime"
	"github.com/caiflower/httpfs/web/protocol"
	"github.com/caiflower/httpfs/web/safepath"
)

type Config struct {
	RootDir      string
	FileCacheTTL time.Duration // 大于0开启文件内容缓存
}

// Handler turns a parsed request into a response. It knows nothing
// about connections, so it can run under any concurrency model.
type Handler struct {
	rootDir  string
	logger   logger.ILog
	detector mime.Detector
	cache    *cache.LocalCache
}

func New(config Config, log logger.ILog) *Handler {
	if log == nil {
		log = logger.DefaultLogger()
	}
	h := &Handler{
		rootDir:  config.RootDir,
		logger:   log,
		detector: mime.NewDetector(),
	}
	if config.FileCacheTTL > 0 {
		h.cache = cache.NewLocalCache(config.FileCacheTTL)
	}
	return h
}

func (h *Handler) SetDetector(d mime.Detector) {
	h.detector = d
}

func (h *Handler) Handle(req *protocol.Request) *protocol.Response {
	switch req.Method {
	case protocol.MethodGet:
		return h.handleGet(req)
	case protocol.MethodPost:
		return h.handlePost(req)
	default:
		h.logger.Warn("unsupported method %s", req.Method)
		return protocol.NewResponse(req.Version, protocol.StatusBadRequest, req.Route)
	}
}

func (h *Handler) handleGet(req *protocol.Request) *protocol.Response {
	result := safepath.Check(h.rootDir, req.Route)
	switch result.Verdict {
	case safepath.Unsafe:
		h.logger.Warn("unsafe path access attempted: %s", result.Path)
		return protocol.NewResponse(req.Version, protocol.StatusForbidden, "Forbidden")
	case safepath.ResolutionError:
		h.logger.Warn("path resolution failed: %s", result.Err.Error())
		return notFound(req.Version)
	}

	info, err := os.Stat(result.Path)
	if err != nil {
		return notFound(req.Version)
	}
	if info.IsDir() {
		return h.handleListing(req, result.Path)
	}
	if info.Mode().IsRegular() {
		return h.handleFile(req, result.Path)
	}
	return notFound(req.Version)
}

func notFound(version protocol.Version) *protocol.Response {
	resp := protocol.NewResponse(version, protocol.StatusNotFound, "Not Found")
	resp.AddHeader("Content-Type", "text/plain")
	resp.SetBody([]byte("File not found"))
	return resp
}
