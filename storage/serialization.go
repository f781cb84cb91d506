// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/longdoc/core"
)

// The session record layout is hand-written MUS: varint scalars, length-
// prefixed strings, CreatedAt as unix microseconds.

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.SizeUint64(uint64(id)))
	varint.MarshalUint64(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.UnmarshalUint64(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return core.ID(v), nil
}

// MarshalSessionRecord serializes a SessionRecord to bytes.
func MarshalSessionRecord(record *core.SessionRecord) []byte {
	size := varint.SizeUint64(uint64(record.Id)) +
		ord.SizeString(record.Question, nil) +
		varint.SizeInt(record.DocumentLength) +
		ord.SizeString(record.Context, nil) +
		varint.SizeInt64(record.CreatedAt.UnixMicro())

	buf := make([]byte, size)
	n := varint.MarshalUint64(uint64(record.Id), buf)
	n += ord.MarshalString(record.Question, nil, buf[n:])
	n += varint.MarshalInt(record.DocumentLength, buf[n:])
	n += ord.MarshalString(record.Context, nil, buf[n:])
	varint.MarshalInt64(record.CreatedAt.UnixMicro(), buf[n:])
	return buf
}

// UnmarshalSessionRecord deserializes a SessionRecord from bytes.
func UnmarshalSessionRecord(data []byte) (*core.SessionRecord, error) {
	id, n, err := varint.UnmarshalUint64(data)
	if err != nil {
		return nil, fmt.Errorf("%w: id: %w", ErrCorruptRecord, err)
	}

	question, m, err := ord.UnmarshalString(nil, data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: question: %w", ErrCorruptRecord, err)
	}
	n += m

	docLen, m, err := varint.UnmarshalInt(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: document length: %w", ErrCorruptRecord, err)
	}
	n += m

	contextText, m, err := ord.UnmarshalString(nil, data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: context: %w", ErrCorruptRecord, err)
	}
	n += m

	createdAt, _, err := varint.UnmarshalInt64(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: created at: %w", ErrCorruptRecord, err)
	}

	return &core.SessionRecord{
		Id:             core.ID(id),
		Question:       question,
		DocumentLength: docLen,
		Context:        contextText,
		CreatedAt:      time.UnixMicro(createdAt),
	}, nil
}
