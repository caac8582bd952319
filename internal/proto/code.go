// Package proto implements the binary relay protocol: two tagged message
// families (client->server and server->client) with a leading type byte and
// fixed-width fields, no length prefixes, no versioning.
package proto

import (
	"crypto/rand"
	"encoding/hex"
)

// CodeSize is the width of a room code on the wire.
const CodeSize = 4

// Code identifies a live room. Uniqueness among live rooms is enforced by the
// registry; the code space is small enough to print and type, large enough
// that collisions are a map lookup away from impossible.
type Code [CodeSize]byte

func NewCode() Code {
	var c Code
	rand.Read(c[:])
	return c
}

func (c Code) String() string {
	return hex.EncodeToString(c[:])
}
