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

package mime

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultType = "application/octet-stream"

// Detector maps file content or file extension to a content type.
type Detector interface {
	Detect(content []byte, path string) string
}

var extTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".ogg":  "video/ogg",
}

type sniffDetector struct{}

func NewDetector() Detector {
	return sniffDetector{}
}

// Detect sniffs magic numbers first and keeps the result only for
// binary formats. Text content falls through to the extension table,
// so e.g. index.html is served as plain "text/html".
func (sniffDetector) Detect(content []byte, path string) string {
	if mt := mimetype.Detect(content); mt != nil {
		t := mt.String()
		if i := strings.Index(t, ";"); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		if t != DefaultType && !strings.HasPrefix(t, "text/") {
			return t
		}
	}

	if t, ok := extTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return t
	}
	return DefaultType
}
