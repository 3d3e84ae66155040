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

package main

import (
	"errors"
	"fmt"

	"github.com/nestio/nest-go/internal/script"
)

// check runs the given scenario files and verifies that each produces the
// outcome it declares.
func check(args []string) error {
	if len(args) == 0 {
		return errors.New("no scenario files specified")
	}

	failed := 0
	for _, path := range args {
		s, err := script.LoadFile(path)
		if err != nil {
			return err
		}

		if err := s.Check(); err != nil {
			failed++
			fmt.Println("FAIL", path)
			fmt.Println(err.Error())
			continue
		}
		fmt.Println("PASS", path)
	}

	if failed > 0 {
		return fmt.Errorf("%v of %v scenarios failed", failed, len(args))
	}
	return nil
}
