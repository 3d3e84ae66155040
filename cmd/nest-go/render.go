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
	"io"
	"os"
	"strings"

	"github.com/nestio/nest-go/internal/script"
	"github.com/nestio/nest-go/jsonstream"
)

// render writes the document a scenario's steps describe as JSON. Unlike
// check, which drives the stack directly, render feeds the steps through a
// Writer, so member names come from each key step's name field and
// container closes pair themselves with their keys.
func render(args []string) (deferredErr error) {
	outf := ""

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "-" || arg == "--" {
			i++
			break
		}

		switch arg {
		case "-o", "--output":
			i++
			if i >= len(args) {
				return errors.New("no output file specified")
			}
			outf = args[i]

		default:
			return errors.New("unrecognized option \"" + arg + "\"")
		}
	}

	if i != len(args)-1 {
		return errors.New("render takes exactly one scenario file")
	}

	s, err := script.LoadFile(args[i])
	if err != nil {
		return err
	}

	out, err := openOutput(outf)
	if err != nil {
		return err
	}
	defer func() {
		closeError := out.Close()
		if deferredErr == nil {
			deferredErr = closeError
		}
	}()

	return renderTo(s, out)
}

func renderTo(s *script.Scenario, out io.Writer) error {
	w := jsonstream.NewWriter(out)

	for i, step := range s.Steps {
		if err := renderStep(w, step); err != nil {
			return fmt.Errorf("step %v: %w", i+1, err)
		}
	}
	if err := w.Finish(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out)
	return err
}

func renderStep(w *jsonstream.Writer, step script.Step) error {
	switch step.Op {
	case script.OpBeginMap:
		return w.BeginObject()
	case script.OpBeginSeq:
		return w.BeginArray()
	case script.OpEndMap:
		return w.EndObject()
	case script.OpEndSeq:
		return w.EndArray()
	case script.OpKey:
		return w.Name(step.Name)
	case script.OpValue:
		return renderValue(w, step.Value)
	case script.OpReset:
		return errors.New("reset cannot be rendered")
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

func renderValue(w *jsonstream.Writer, val any) error {
	switch v := val.(type) {
	case nil:
		return w.WriteNull()
	case string:
		return w.WriteString(v)
	case bool:
		return w.WriteBool(v)
	case int:
		return w.WriteInt(int64(v))
	case int64:
		return w.WriteInt(v)
	case uint64:
		return w.WriteUint(v)
	case float64:
		return w.WriteFloat(v)
	}
	return fmt.Errorf("unsupported value type %T", val)
}

type uncloseable struct {
	w io.Writer
}

func (u uncloseable) Write(bs []byte) (int, error) {
	return u.w.Write(bs)
}

func (u uncloseable) Close() error {
	return nil
}

// openOutput opens the output stream.
func openOutput(outf string) (io.WriteCloser, error) {
	if outf == "" {
		return uncloseable{os.Stdout}, nil
	}
	return os.OpenFile(outf, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0644)
}
