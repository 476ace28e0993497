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

// Package config holds the bind/connect configuration records shared by
// socket.Listen and socket.Dial. Only NetworkUnix is exercised by this
// module's own code; the Network field keeps protocol.NetworkProtocol's
// full BSD family enum so the record can be reused by callers driving a
// real network listener with the same shape.
package config

import (
	"fmt"

	libprm "github.com/nabbar/ipckit/file/perm"
	libptc "github.com/nabbar/ipckit/network/protocol"
)

// Server configures socket.Listen.
type Server struct {
	// Network selects the socket family. Only NetworkUnix is supported
	// by this module's own listener implementation.
	Network libptc.NetworkProtocol `json:"network" yaml:"network"`
	// Address is the local socket name: translated to
	// <os.TempDir()>/<name>.sock on POSIX (an absolute path is used as
	// is), \\.\pipe\<name> on Windows.
	Address string `json:"address" yaml:"address"`
	// PermFile is the Unix filesystem permission applied to the bound
	// socket path on POSIX; ignored on Windows.
	PermFile libprm.Perm `json:"perm_file" yaml:"perm_file"`
	// GroupPerm is the gid to chown the socket path to on POSIX; -1
	// leaves the group unchanged. Ignored on Windows.
	GroupPerm int32 `json:"group_perm" yaml:"group_perm"`
}

// Validate reports whether the Server configuration is usable.
func (s Server) Validate() error {
	if s.Network != libptc.NetworkUnix {
		return fmt.Errorf("socket/config: unsupported network %q, only %q is supported", s.Network.String(), libptc.NetworkUnix.String())
	}
	if s.Address == "" {
		return fmt.Errorf("socket/config: address must not be empty")
	}
	return nil
}

// Client configures socket.Dial.
type Client struct {
	Network libptc.NetworkProtocol `json:"network" yaml:"network"`
	Address string                 `json:"address" yaml:"address"`
}

// Validate reports whether the Client configuration is usable.
func (c Client) Validate() error {
	if c.Network != libptc.NetworkUnix {
		return fmt.Errorf("socket/config: unsupported network %q, only %q is supported", c.Network.String(), libptc.NetworkUnix.String())
	}
	if c.Address == "" {
		return fmt.Errorf("socket/config: address must not be empty")
	}
	return nil
}
