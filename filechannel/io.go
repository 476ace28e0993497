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

package filechannel

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// readMessages returns the JSON array stored at path, or nil if the
// file does not exist or is empty (a mailbox that has never been
// written to). A mailbox that was just Cleared holds "[]" and yields
// an empty slice.
func readMessages(path string) ([]Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var msgs []Message
	if err = json.Unmarshal(data, &msgs); err != nil {
		return nil, ErrorInvalidData.Error(err)
	}
	return msgs, nil
}

// writeMessagesAtomic marshals msgs and replaces path via a temp file
// plus rename, so a concurrent reader never observes a partial array.
func writeMessagesAtomic(dir, path string, msgs []Message) error {
	if msgs == nil {
		msgs = []Message{}
	}

	data, err := json.Marshal(msgs)
	if err != nil {
		return ErrorInvalidData.Error(err)
	}

	tmp, err := os.CreateTemp(dir, ".filechannel-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

func maxID(msgs []Message) int64 {
	var m int64
	for _, msg := range msgs {
		if msg.ID > m {
			m = msg.ID
		}
	}
	return m
}

func resolvePaths(dir string, role Role) (outbox, inbox string) {
	switch role {
	case RoleBackend:
		return filepath.Join(dir, outboxName), filepath.Join(dir, inboxName)
	default:
		return filepath.Join(dir, inboxName), filepath.Join(dir, outboxName)
	}
}
