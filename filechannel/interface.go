/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package filechannel implements spec.md §4.5's frontend↔backend JSON
// mailbox protocol: two append-only JSON-array files in one directory,
// one per writer direction, exchanged via atomic temp-file-plus-rename
// writes so a reader never observes a half-written array.
package filechannel

import (
	"context"
	"encoding/json"
)

// Role selects which of the two mailbox files this Mailbox writes to
// and which it reads from.
type Role uint8

const (
	RoleBackend Role = iota
	RoleFrontend
)

func (r Role) String() string {
	switch r {
	case RoleBackend:
		return "backend"
	case RoleFrontend:
		return "frontend"
	default:
		return "unknown"
	}
}

const (
	outboxName = "backend_to_frontend.json"
	inboxName  = "frontend_to_backend.json"
)

// Kind classifies a Message per spec.md §6's wire record.
type Kind string

const (
	KindRequest  Kind = "request"
	KindResponse Kind = "response"
	KindEvent    Kind = "event"
)

// Message is one record of a mailbox file, matching spec.md §6's JSON
// shape exactly (field names included).
type Message struct {
	ID        int64           `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Type      Kind            `json:"type"`
	Method    string          `json:"method,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	ReplyTo   *int64          `json:"reply_to,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// Mailbox is one side (backend or frontend) of a file-channel pair.
// A single Mailbox instance is the only writer for its direction;
// spec.md §4.5 explicitly does not support multiple writers on the
// same side.
type Mailbox interface {
	// Send assigns the next monotonic id for this writer, appends a
	// record, and atomically rewrites the outbox file. payload is
	// marshaled as-is; pass nil for none.
	Send(kind Kind, method string, payload interface{}, replyTo *int64) (int64, error)

	// Recv returns inbox records newer than the highest id previously
	// returned to this Mailbox, advancing the watermark.
	Recv() ([]Message, error)

	// WaitResponse blocks until a record with ReplyTo == id appears in
	// the inbox, ctx is cancelled, or no deadline is set and ctx is
	// Background (blocks indefinitely). Fails with Timeout when ctx's
	// deadline elapses first.
	WaitResponse(ctx context.Context, id int64) (Message, error)

	// Clear truncates both mailbox files to an empty array.
	Clear() error

	// Close releases any background watch resources. Double-close is a
	// no-op.
	Close() error
}

// Open binds a Mailbox to dir for the given role. The directory is
// created if it does not exist.
func Open(dir string, role Role) (Mailbox, error) {
	return newMailbox(dir, role)
}
