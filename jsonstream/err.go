/*
 * Copyright the nest-go authors. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package jsonstream

import (
	"errors"
	"fmt"

	"github.com/nestio/nest-go/nest"
)

// A UsageError is returned when a Writer is driven out of protocol in a way
// the document structure itself cannot express, such as writing past the
// end of the document.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("jsonstream: usage error in %v: %v", e.API, e.Msg)
}

// An IOError is returned when the underlying stream cannot be written.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("jsonstream: i/o error: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// structural translates a stack rejection into the JSON-level diagnostic
// for it. The structural error stays in the chain for errors.As.
func structural(api string, err error) error {
	var (
		capacity   *nest.CapacityError
		mismatch   *nest.MismatchError
		incomplete *nest.IncompleteMapError
		key        *nest.UnexpectedKeyError
		value      *nest.UnexpectedValueError
	)

	msg := "malformed document structure"
	switch {
	case errors.As(err, &capacity):
		msg = "document nests too deeply"
	case errors.As(err, &mismatch):
		msg = "close does not match the open scope"
	case errors.As(err, &incomplete):
		msg = "object member has a name but no value"
	case errors.As(err, &key):
		msg = "member name not allowed here"
	case errors.As(err, &value):
		msg = "value not allowed here"
	}

	return fmt.Errorf("jsonstream: %v: %v: %w", api, msg, err)
}
