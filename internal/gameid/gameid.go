// Package gameid generates sortable identifiers for recorded games.
package gameid

import (
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/darkhorse/internal/randutil"
)

// Crockford's base32, lower case. Ordered so encoded IDs sort like the bytes.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded ID.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generator produces UUIDv7 values encoded in base32.
type Generator struct {
	rng   randutil.Source
	clock quartz.Clock
}

// NewGenerator creates a generator. Both arguments are required so IDs can be
// reproduced in tests.
func NewGenerator(rng randutil.Source, clock quartz.Clock) *Generator {
	return &Generator{rng: rng, clock: clock}
}

// Generate returns a new ID. IDs from later milliseconds sort after earlier ones.
func (g *Generator) Generate() string {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then random bits.
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(g.clock.Now().UnixMilli()))
	copy(uuid[:6], ts[2:])
	for i := 6; i < len(uuid); i++ {
		uuid[i] = byte(g.rng.IntN(256))
	}

	uuid[6] = (uuid[6] & 0x0f) | 0x70 // version 7
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant 10

	return encoding.EncodeToString(uuid[:])
}

// Validate checks that id is a well-formed encoded ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	if _, err := encoding.DecodeString(id); err != nil {
		return fmt.Errorf("game ID does not decode: %w", err)
	}
	return nil
}
