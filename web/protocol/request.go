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
	"fmt"
	"strings"
)

// Request 每个连接解析一次，构造之后不再修改
type Request struct {
	Method  Method
	Route   string // 请求路径，去掉第一个'/'
	Version Version
	Headers map[string]string
	Body    string
}

// ParseRequest parses a raw request buffer. A malformed request line,
// an unknown method or version token, or a header line without a colon
// rejects the whole request.
func ParseRequest(raw []byte) (*Request, error) {
	s := string(raw)

	line := s
	if i := strings.Index(s, "\r\n"); i >= 0 {
		line = s[:i]
	} else if i = strings.Index(s, "\n"); i >= 0 {
		line = s[:i]
	}

	parts := strings.Fields(line)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed request line %q", line)
	}

	method, err := ParseMethod(parts[0])
	if err != nil {
		return nil, err
	}

	version, err := ParseVersion(parts[2])
	if err != nil {
		return nil, err
	}

	headers, err := parseHeaders(s)
	if err != nil {
		return nil, err
	}

	body := ""
	if i := strings.Index(s, "\r\n\r\n"); i >= 0 {
		body = s[i+4:]
	}

	return &Request{
		Method:  method,
		Route:   strings.TrimPrefix(parts[1], "/"),
		Version: version,
		Headers: headers,
		Body:    body,
	}, nil
}

// 头部key和value去除两端空白，重复的key后写的生效
func parseHeaders(s string) (map[string]string, error) {
	_, rest, ok := strings.Cut(s, "\r\n")
	if !ok {
		return nil, fmt.Errorf("missing request line terminator")
	}

	headers := make(map[string]string)
	for _, line := range strings.Split(rest, "\r\n") {
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed header line %q", line)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return headers, nil
}
