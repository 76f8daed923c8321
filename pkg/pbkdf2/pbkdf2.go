// Package pbkdf2 derives fixed-length keys from low-entropy passwords
// using the PKCS #5 v2.0 PBKDF2 construction over HMAC (RFC 8018 §5.2,
// with the block-counter convention of IEEE 802.11-2007 Annex H.4.2).
// The SHA-1 instantiation reproduces the OpenBSD pkcs5_pbkdf2 output
// byte for byte, so keys derived by existing consumers keep matching.
//
// Secret intermediate state (padded keys, digest chains, the working
// salt) is zeroed before release on every path. The derivation is a
// pure function of its inputs; concurrent independent calls are safe.
package pbkdf2

import (
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"hash"
)

// Validation errors, all detected before any hashing starts. They are
// unrecoverable by retry: the caller must fix the input.
var (
	ErrInvalidRounds = errors.New("pbkdf2: rounds must be at least 1")
	ErrInvalidLength = errors.New("pbkdf2: key length must be at least 1")
	ErrInvalidSalt   = errors.New("pbkdf2: salt must be non-empty and leave room for the block counter")
)

// maxSaltLen keeps len(salt)+4 from overflowing when the 4-byte block
// counter is appended to the working salt.
const maxSaltLen = int(^uint(0)>>1) - 4

// DeriveKey stretches password and salt into exactly keyLen bytes of
// key material using PBKDF2-HMAC-SHA1. rounds controls the cost of
// each derived block; the cost of the whole call is proportional to
// rounds times ceil(keyLen/20).
func DeriveKey(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	return DeriveKeyHash(password, salt, rounds, keyLen, sha1.New)
}

// DeriveKeyHash is DeriveKey generalized over the hash primitive. The
// primitive's own block and digest sizes drive the construction, so
// any fixed-block hash (sha256.New, ...) can be substituted.
func DeriveKeyHash(password, salt []byte, rounds, keyLen int, h func() hash.Hash) ([]byte, error) {
	if rounds < 1 {
		return nil, ErrInvalidRounds
	}
	if keyLen < 1 {
		return nil, ErrInvalidLength
	}
	if len(salt) == 0 || len(salt) > maxSaltLen {
		return nil, ErrInvalidSalt
	}

	p := newPRF(h)

	// Working salt with room for the big-endian block counter, plus
	// the chain buffers (d1, d2) and the xor accumulator for one
	// output block. All of it is as sensitive as the key itself.
	asalt := make([]byte, len(salt)+4)
	copy(asalt, salt)
	d1 := make([]byte, p.digestLen)
	d2 := make([]byte, p.digestLen)
	obuf := make([]byte, p.digestLen)
	defer func() {
		scrub(asalt)
		scrub(d1)
		scrub(d2)
		scrub(obuf)
	}()

	key := make([]byte, keyLen)
	out := key

	// The counter starts at 1 and increments once per output block,
	// not once per round. Rounds chain within a single block.
	for count := uint32(1); len(out) > 0; count++ {
		binary.BigEndian.PutUint32(asalt[len(salt):], count)
		p.sum(asalt, password, d1)
		copy(obuf, d1)

		for i := 1; i < rounds; i++ {
			p.sum(d1, password, d2)
			copy(d1, d2)
			for j := range obuf {
				obuf[j] ^= d1[j]
			}
		}

		// Final block is truncated, never zero-padded.
		n := copy(out, obuf)
		out = out[n:]
	}

	return key, nil
}

// scrub zeroes b. Secret scratch buffers pass through here before they
// go back to the allocator; plain deallocation does not erase them.
func scrub(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
