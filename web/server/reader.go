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

package server

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

var ErrRequestTooLarge = errors.New("request exceeds size limit")

const readChunkSize = 1024

var crlfcrlf = []byte("\r\n\r\n")

// readRequest reads one request into a growable buffer: chunks are
// appended until the blank line ending the header block arrives, then
// Content-Length more bytes. max bounds the whole request; exceeding it
// returns ErrRequestTooLarge instead of silently truncating.
//
// A body without a Content-Length header is not read: with one request
// per connection there is no other way to know where it ends without
// blocking on a client that never closes its side.
func readRequest(r io.Reader, max int) ([]byte, error) {
	buf := make([]byte, 0, readChunkSize)
	chunk := make([]byte, readChunkSize)
	total := -1

	for {
		if total < 0 {
			if i := bytes.Index(buf, crlfcrlf); i >= 0 {
				headerEnd := i + len(crlfcrlf)
				cl := contentLength(buf[:headerEnd])
				if cl < 0 {
					total = headerEnd
				} else {
					total = headerEnd + cl
				}
				if total > max {
					return nil, ErrRequestTooLarge
				}
			}
		}
		if total >= 0 && len(buf) >= total {
			return buf[:total], nil
		}
		if len(buf) >= max {
			return nil, ErrRequestTooLarge
		}

		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			continue
		}
		if err != nil {
			// 客户端提前关闭，按已读内容处理
			if err == io.EOF && len(buf) > 0 {
				return buf, nil
			}
			return nil, err
		}
	}
}

// 大小写不敏感查找Content-Length头
func contentLength(header []byte) int {
	for _, line := range strings.Split(string(header), "\r\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil || n < 0 {
				return -1
			}
			return n
		}
	}
	return -1
}
