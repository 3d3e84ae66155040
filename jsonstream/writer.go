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

// Package jsonstream renders JSON incrementally, one structural event at a
// time, with a nest.Stack guarding every transition. It is the reference
// consumer of the stack's API: the stack decides legality, the writer
// decides bytes and delimiters.
package jsonstream

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/nestio/nest-go/nest"
)

// jsonConfig backs streams created by writers that own their stream.
var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultBufSize = 512

// A Writer emits one JSON document, using a nest.Stack to validate every
// structural transition before any bytes are written.
//
// The Begin methods open an object or array; every value inside an object
// is preceded by a Name call:
//
//	w := jsonstream.NewWriter(os.Stdout)
//	w.BeginObject()
//	{
//		w.Name("id")
//		w.WriteString("foo")
//		w.Name("sizes")
//		w.BeginArray()
//		{
//			w.WriteInt(1)
//			w.WriteInt(2)
//		}
//		w.EndArray()
//	}
//	w.EndObject()
//	if err := w.Finish(); err != nil {
//		return err
//	}
//
// While individual methods all return an error on failure, the writer
// remembers any error, no-ops subsequent calls, and returns the previous
// error. This lets you keep code a bit cleaner by only checking the return
// value of the final Finish. Note the contrast with the stack itself, which
// rejects events without latching: once part of a document has reached the
// output there is no way to unwrite it, so the writer stops at the first
// failure.
//
// A Writer produces exactly one top-level value, and it must be an object
// or an array.
type Writer struct {
	stream *jsoniter.Stream
	stack  *nest.Stack
	err    error

	needsSeparator bool
	named          bool
	done           bool
}

// NewWriter returns a writer that renders one JSON document to out.
func NewWriter(out io.Writer) *Writer {
	return NewStreamWriter(jsoniter.NewStream(jsonConfig, out, defaultBufSize))
}

// NewStreamWriter returns a writer over a caller-managed stream, for use
// with pooled streams (BorrowStream/ReturnStream).
func NewStreamWriter(stream *jsoniter.Stream) *Writer {
	return &Writer{
		stream: stream,
		stack:  nest.New(),
	}
}

// BeginObject begins writing an object.
func (w *Writer) BeginObject() error {
	if w.err == nil {
		w.err = w.begin("Writer.BeginObject", w.stack.BeginMap, w.stream.WriteObjectStart)
	}
	return w.err
}

// EndObject finishes writing an object.
func (w *Writer) EndObject() error {
	if w.err == nil {
		w.err = w.end("Writer.EndObject", w.stack.EndMap, w.stream.WriteObjectEnd)
	}
	return w.err
}

// BeginArray begins writing an array.
func (w *Writer) BeginArray() error {
	if w.err == nil {
		w.err = w.begin("Writer.BeginArray", w.stack.BeginSeq, w.stream.WriteArrayStart)
	}
	return w.err
}

// EndArray finishes writing an array.
func (w *Writer) EndArray() error {
	if w.err == nil {
		w.err = w.end("Writer.EndArray", w.stack.EndSeq, w.stream.WriteArrayEnd)
	}
	return w.err
}

// Name writes the name of the next object member. It may only be called
// inside an object, and every member value must be preceded by one.
func (w *Writer) Name(field string) error {
	const api = "Writer.Name"
	if w.err != nil {
		return w.err
	}
	if w.done {
		w.err = &UsageError{api, "document already complete"}
		return w.err
	}
	if err := w.stack.Key(); err != nil {
		w.err = structural(api, err)
		return w.err
	}

	if w.needsSeparator {
		w.stream.WriteMore()
		w.needsSeparator = false
	}
	w.stream.WriteObjectField(field)
	w.named = true
	return nil
}

// WriteString writes a string value.
func (w *Writer) WriteString(val string) error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteString", func() { w.stream.WriteString(val) })
	}
	return w.err
}

// WriteInt writes an integer value.
func (w *Writer) WriteInt(val int64) error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteInt", func() { w.stream.WriteInt64(val) })
	}
	return w.err
}

// WriteUint writes an unsigned integer value.
func (w *Writer) WriteUint(val uint64) error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteUint", func() { w.stream.WriteUint64(val) })
	}
	return w.err
}

// WriteFloat writes a floating-point value.
func (w *Writer) WriteFloat(val float64) error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteFloat", func() { w.stream.WriteFloat64(val) })
	}
	return w.err
}

// WriteBool writes a boolean value.
func (w *Writer) WriteBool(val bool) error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteBool", func() { w.stream.WriteBool(val) })
	}
	return w.err
}

// WriteNull writes a null value.
func (w *Writer) WriteNull() error {
	if w.err == nil {
		w.err = w.scalar("Writer.WriteNull", w.stream.WriteNil)
	}
	return w.err
}

// Depth returns the number of currently open objects and arrays.
func (w *Writer) Depth() int {
	return w.stack.Depth()
}

// Finish validates that exactly one complete document was written, then
// flushes the stream.
func (w *Writer) Finish() error {
	if w.err != nil {
		return w.err
	}
	if w.stack.Depth() > 0 {
		kind := "array"
		if w.stack.TopKind() == nest.MapKind {
			kind = "object"
		}
		w.err = &UsageError{"Writer.Finish", "unclosed " + kind}
		return w.err
	}
	if !w.done {
		w.err = &UsageError{"Writer.Finish", "no document written"}
		return w.err
	}

	if err := w.stream.Flush(); err != nil {
		w.err = &IOError{err}
		return w.err
	}
	return nil
}

// begin starts a container once the stack accepts it.
func (w *Writer) begin(api string, push func() error, write func()) error {
	if w.done {
		return &UsageError{api, "document already complete"}
	}
	if w.stack.TopKind() == nest.MapKind && !w.named {
		return &UsageError{api, "member name not set"}
	}
	if err := push(); err != nil {
		return structural(api, err)
	}

	if w.needsSeparator {
		w.stream.WriteMore()
		w.needsSeparator = false
	}
	write()
	w.named = false
	return nil
}

// end closes a container once the stack accepts it.
func (w *Writer) end(api string, pop func() error, write func()) error {
	if w.done {
		return &UsageError{api, "document already complete"}
	}
	if err := pop(); err != nil {
		return structural(api, err)
	}

	write()
	w.needsSeparator = true

	if w.stack.Depth() == 0 {
		w.done = true
		return nil
	}
	if w.stack.TopKind() == nest.MapKind {
		// The closed container was this map's value; complete the pair.
		if err := w.stack.Value(); err != nil {
			return structural(api, err)
		}
	}
	return nil
}

// scalar writes one plain value once the stack accepts it.
func (w *Writer) scalar(api string, write func()) error {
	if w.done {
		return &UsageError{api, "document already complete"}
	}
	if err := w.stack.Value(); err != nil {
		return structural(api, err)
	}

	if w.needsSeparator {
		w.stream.WriteMore()
	}
	write()
	w.named = false
	w.needsSeparator = true
	return nil
}
