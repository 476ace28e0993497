/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

// Package protocol enumerates the network families a local socket listener
// can bind to. The toolkit only ever uses NetworkUnix (POSIX domain socket)
// or the Windows named-pipe pseudo-transport, but the full BSD socket
// family set is kept so configuration records can be shared with code that
// also drives real network listeners.
package protocol

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

type NetworkProtocol uint8

const (
	NetworkEmpty NetworkProtocol = iota
	NetworkUnix
	NetworkTCP
	NetworkTCP4
	NetworkTCP6
	NetworkUDP
	NetworkUDP4
	NetworkUDP6
	NetworkIP
	NetworkIP4
	NetworkIP6
	NetworkUnixGram
)

var protocolNames = map[NetworkProtocol]string{
	NetworkUnix:     "unix",
	NetworkTCP:      "tcp",
	NetworkTCP4:     "tcp4",
	NetworkTCP6:     "tcp6",
	NetworkUDP:      "udp",
	NetworkUDP4:     "udp4",
	NetworkUDP6:     "udp6",
	NetworkIP:       "ip",
	NetworkIP4:      "ip4",
	NetworkIP6:      "ip6",
	NetworkUnixGram: "unixgram",
}

var protocolValues = func() map[string]NetworkProtocol {
	m := make(map[string]NetworkProtocol, len(protocolNames))
	for p, s := range protocolNames {
		m[s] = p
	}
	return m
}()

func (p NetworkProtocol) String() string {
	return protocolNames[p]
}

func (p NetworkProtocol) Code() string {
	return p.String()
}

func (p NetworkProtocol) Int() int       { return int(p.Uint64()) }
func (p NetworkProtocol) Int64() int64   { return int64(p.Uint64()) }
func (p NetworkProtocol) Uint() uint     { return uint(p.Uint64()) }
func (p NetworkProtocol) Uint64() uint64 {
	if _, ok := protocolNames[p]; !ok {
		return 0
	}
	return uint64(p)
}

// ParseInt64 rebuilds a NetworkProtocol from the numeric code returned by
// Int64; an unrecognized code yields NetworkEmpty.
func ParseInt64(i int64) NetworkProtocol {
	if i < 0 || i > math.MaxUint8 {
		return NetworkEmpty
	}
	p := NetworkProtocol(i)
	if _, ok := protocolNames[p]; !ok {
		return NetworkEmpty
	}
	return p
}

func cleanToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "`")
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, `'`)
	return s
}

// Parse matches s, trimmed and unquoted, case-insensitively against the
// known protocol names; anything else (including the empty string) yields
// NetworkEmpty.
func Parse(s string) NetworkProtocol {
	s = strings.ToLower(cleanToken(s))
	if p, ok := protocolValues[s]; ok {
		return p
	}
	return NetworkEmpty
}

func ParseBytes(b []byte) NetworkProtocol {
	return Parse(string(b))
}

func (p NetworkProtocol) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

func (p *NetworkProtocol) UnmarshalJSON(b []byte) error {
	*p = ParseBytes(bytes.Trim(b, `"`))
	return nil
}

func (p NetworkProtocol) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *NetworkProtocol) UnmarshalYAML(value *yaml.Node) error {
	*p = Parse(value.Value)
	return nil
}

func (p NetworkProtocol) MarshalTOML() ([]byte, error) {
	return p.MarshalJSON()
}

func (p *NetworkProtocol) UnmarshalTOML(i interface{}) error {
	switch v := i.(type) {
	case []byte:
		*p = ParseBytes(v)
		return nil
	case string:
		*p = Parse(v)
		return nil
	default:
		return fmt.Errorf("network protocol: value not in valid format")
	}
}

func (p NetworkProtocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *NetworkProtocol) UnmarshalText(b []byte) error {
	*p = ParseBytes(b)
	return nil
}

func (p NetworkProtocol) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(p.String())
}

func (p *NetworkProtocol) UnmarshalCBOR(b []byte) error {
	var s string
	if err := cbor.Unmarshal(b, &s); err == nil {
		*p = Parse(s)
		return nil
	}
	*p = ParseBytes(b)
	return nil
}
