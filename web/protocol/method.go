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

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodConnect Method = "CONNECT"
	MethodPatch   Method = "PATCH"
)

// ParseMethod 解析请求方法，大小写不敏感
func ParseMethod(token string) (Method, error) {
	switch Method(strings.ToUpper(token)) {
	case MethodGet:
		return MethodGet, nil
	case MethodPost:
		return MethodPost, nil
	case MethodPut:
		return MethodPut, nil
	case MethodDelete:
		return MethodDelete, nil
	case MethodHead:
		return MethodHead, nil
	case MethodOptions:
		return MethodOptions, nil
	case MethodTrace:
		return MethodTrace, nil
	case MethodConnect:
		return MethodConnect, nil
	case MethodPatch:
		return MethodPatch, nil
	default:
		return "", fmt.Errorf("unknown method %q", token)
	}
}
