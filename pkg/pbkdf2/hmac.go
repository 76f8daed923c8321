package pbkdf2

import "hash"

// prf is an RFC 2104 keyed-digest engine over a fixed-block hash
// primitive. Block and digest lengths are read from the primitive, so
// the construction works unchanged for SHA-1, SHA-256 and friends.
type prf struct {
	newHash   func() hash.Hash
	blockLen  int
	digestLen int
}

func newPRF(h func() hash.Hash) prf {
	probe := h()
	return prf{
		newHash:   h,
		blockLen:  probe.BlockSize(),
		digestLen: probe.Size(),
	}
}

// sum writes HMAC(key, text) into out, which must be digestLen bytes
// long. Keys longer than one block are hashed down to digest length
// first. text and out may alias: text is fully absorbed before out is
// touched. All key-derived scratch is zeroed before returning.
func (p prf) sum(text, key, out []byte) {
	pad := make([]byte, p.blockLen)
	var tk []byte
	if len(key) > p.blockLen {
		h := p.newHash()
		h.Write(key)
		tk = h.Sum(nil)
		key = tk
	}

	copy(pad, key)
	for i := range pad {
		pad[i] ^= 0x36
	}
	h := p.newHash()
	h.Write(pad)
	h.Write(text)
	inner := h.Sum(out[:0])

	scrub(pad)
	copy(pad, key)
	for i := range pad {
		pad[i] ^= 0x5c
	}
	h = p.newHash()
	h.Write(pad)
	h.Write(inner)
	h.Sum(out[:0])

	scrub(pad)
	scrub(tk)
}
