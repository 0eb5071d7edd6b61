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

type Status int

const (
	StatusOK                  Status = 200
	StatusBadRequest          Status = 400
	StatusForbidden           Status = 403
	StatusNotFound            Status = 404
	StatusPayloadTooLarge     Status = 413
	StatusInternalServerError Status = 500
)

func (s Status) Code() int {
	return int(s)
}

func (s Status) Reason() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Not Found"
	case StatusPayloadTooLarge:
		return "Payload Too Large"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Internal Server Error"
	}
}

func (s Status) String() string {
	return fmt.Sprintf("%d %s", s.Code(), s.Reason())
}
