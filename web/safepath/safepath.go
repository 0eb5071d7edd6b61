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

package safepath

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

type Verdict int

const (
	Safe Verdict = iota
	Unsafe
	ResolutionError
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "Safe"
	case Unsafe:
		return "Unsafe"
	case ResolutionError:
		return "ResolutionError"
	default:
		return "Unknown"
	}
}

type Result struct {
	Path    string // route在rootDir下join出的文件系统路径
	Verdict Verdict
	Err     error // ResolutionError时的原因
}

// Check percent-decodes route, joins it under rootDir and verifies the
// canonicalized result stays inside the canonicalized root. For a path
// that does not exist the parent directory is canonicalized instead, so
// a request that will 404 still passes the safety check while traversal
// through nonexistent segments is rejected.
func Check(rootDir, route string) Result {
	decoded, err := url.PathUnescape(route)
	if err != nil {
		return Result{Verdict: ResolutionError, Err: err}
	}

	joined := filepath.Join(rootDir, strings.TrimPrefix(decoded, "/"))

	canonRoot, err := canonicalize(rootDir)
	if err != nil {
		return Result{Path: joined, Verdict: ResolutionError, Err: err}
	}

	target := joined
	if _, err := os.Stat(joined); err != nil {
		if !os.IsNotExist(err) {
			return Result{Path: joined, Verdict: ResolutionError, Err: err}
		}
		target = filepath.Dir(joined)
	}

	canon, err := canonicalize(target)
	if err != nil {
		return Result{Path: joined, Verdict: ResolutionError, Err: err}
	}

	if canon == canonRoot || strings.HasPrefix(canon, canonRoot+string(filepath.Separator)) {
		return Result{Path: joined, Verdict: Safe}
	}
	return Result{Path: joined, Verdict: Unsafe}
}

// 转成绝对路径并解析软链接和`..`
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
