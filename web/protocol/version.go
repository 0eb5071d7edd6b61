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

import "fmt"

type Version string

const (
	VersionHTTP11 Version = "HTTP/1.1"
	VersionHTTP20 Version = "HTTP/2.0"
)

// ParseVersion 版本号大小写敏感，只接受HTTP/1.1和HTTP/2.0
func ParseVersion(token string) (Version, error) {
	switch Version(token) {
	case VersionHTTP11:
		return VersionHTTP11, nil
	case VersionHTTP20:
		return VersionHTTP20, nil
	default:
		return "", fmt.Errorf("unknown version %q", token)
	}
}
