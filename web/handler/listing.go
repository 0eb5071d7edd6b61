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
	"net/url"
	"os"

	"golang.org/x/exp/slices"

	"github.com/caiflower/httpfs/web/protocol"
)

const listingHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Directory listing</title>
    <style>
    body {
        font-family: Arial, sans-serif;
        line-height: 1.6;
        color: #333;
        max-width: 800px;
        margin: 0 auto;
        padding: 20px;
        background-color: #f4f4f4;
    }
    h1 {
        color: #2c3e50;
        border-bottom: 2px solid #3498db;
        padding-bottom: 10px;
    }
    ul {
        list-style-type: none;
        padding: 0;
    }
    li {
        margin-bottom: 10px;
        background-color: #fff;
        border-radius: 4px;
        overflow: hidden;
    }
    li a {
        display: block;
        padding: 10px 15px;
        color: #2980b9;
        text-decoration: none;
        transition: background-color 0.3s ease;
    }
    li a:hover {
        background-color: #ecf0f1;
    }
    .parent-dir {
        font-weight: bold;
    }
    .file-icon, .folder-icon {
        margin-right: 10px;
    }
    .file-icon::before {
        content: "📄";
    }
    .folder-icon::before {
        content: "📁";
    }
    </style>
</head>
<body>
<h1>Directory listing for {{.Dir}}</h1>
<ul>
{{- if .HasParent}}
<li><a href="../" class="parent-dir"><span class="folder-icon"></span>Parent Directory</a></li>
{{- end}}
{{- range .Entries}}
<li><a href="{{.Href}}"><span class="{{.Icon}}"></span>{{.Name}}</a></li>
{{- end}}
{{- if .Message}}
<p>{{.Message}}</p>
{{- end}}
</ul>
</body>
</html>
`

var listingTemplate = template.Must(template.New("listing").Parse(listingHTML))

type listingEntry struct {
	Name string
	Href string
	Icon string
}

type listingData struct {
	Dir       string
	HasParent bool
	Entries   []listingEntry
	Message   string
}

// handleListing renders the directory page. Entry names pass through
// html/template escaping and hrefs are percent-escaped, so untrusted
// file names cannot break the page structure.
func (h *Handler) handleListing(req *protocol.Request, dirPath string) *protocol.Response {
	resp := protocol.NewResponse(req.Version, protocol.StatusOK, dirPath)
	data := listingData{Dir: dirPath, HasParent: req.Route != ""}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsPermission(err) {
			h.logger.Warn("list directory %s failed: %s", dirPath, err.Error())
			resp.Status = protocol.StatusForbidden
			data.Message = "Access denied"
		} else {
			h.logger.Error("list directory %s failed: %s", dirPath, err.Error())
			resp.Status = protocol.StatusInternalServerError
			data.Message = "An error occurred"
		}
	} else {
		for _, entry := range entries {
			icon := "file-icon"
			if entry.IsDir() {
				icon = "folder-icon"
			}
			data.Entries = append(data.Entries, listingEntry{
				Name: entry.Name(),
				Href: url.PathEscape(entry.Name()),
				Icon: icon,
			})
		}
		// 文件夹排在文件前面
		slices.SortFunc(data.Entries, func(a, b listingEntry) bool {
			if a.Icon != b.Icon {
				return a.Icon == "folder-icon"
			}
			return a.Name < b.Name
		})
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("render listing for %s failed: %s", dirPath, err.Error())
		resp.Status = protocol.StatusInternalServerError
		resp.AddHeader("Content-Type", "text/plain")
		resp.SetBody([]byte("An error occurred"))
		return resp
	}

	resp.AddHeader("Content-Type", "text/html")
	resp.SetBody(buf.Bytes())
	return resp
}
