package pbkdf2

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"testing"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func repeatByte(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

// RFC 2202 section 3 test cases for HMAC-SHA-1.
func TestHMACSHA1Vectors(t *testing.T) {
	cases := []struct {
		name string
		key  []byte
		data []byte
		want string
	}{
		{"test_case_1", repeatByte(0x0b, 20), []byte("Hi There"), "b617318655057264e28bc0b6fb378c8ef146be00"},
		{"test_case_2", []byte("Jefe"), []byte("what do ya want for nothing?"), "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79"},
		{"test_case_3", repeatByte(0xaa, 20), repeatByte(0xdd, 50), "125d7342b9ac11cd91a39af48aa17b4f63f175d3"},
		{"test_case_4", mustHex("0102030405060708090a0b0c0d0e0f10111213141516171819"), repeatByte(0xcd, 50), "4c9007f4026250c6bc8414f9bf50c86c2d7235da"},
		{"test_case_5", repeatByte(0x0c, 20), []byte("Test With Truncation"), "4c1a03424b55e07fe7f27be1d58bb9324a9a5a04"},
		{"test_case_6", repeatByte(0xaa, 80), []byte("Test Using Larger Than Block-Size Key - Hash Key First"), "aa4ae5e15272d00e95705637ce8a3b55ed402112"},
		{"test_case_7", repeatByte(0xaa, 80), []byte("Test Using Larger Than Block-Size Key and Larger Than One Block-Size Data"), "e8e99d0f45237d786d6bbaa7965c7808bbff1a91"},
	}

	p := newPRF(sha1.New)
	for _, tc := range cases {
		got := make([]byte, p.digestLen)
		p.sum(tc.data, tc.key, got)
		if gotHex := hex.EncodeToString(got); gotHex != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, gotHex, tc.want)
		}
	}
}

// Keys longer than one hash block must behave exactly like the same
// key pre-hashed down to digest length.
func TestHMACLongKeyNormalization(t *testing.T) {
	p := newPRF(sha1.New)
	longKey := repeatByte(0xaa, 80)
	text := []byte("key normalization check")

	sum := sha1.Sum(longKey)
	hashedKey := sum[:]

	got := make([]byte, p.digestLen)
	want := make([]byte, p.digestLen)
	p.sum(text, longKey, got)
	p.sum(text, hashedKey, want)

	if !bytes.Equal(got, want) {
		t.Errorf("long key: got %x, want %x (pre-hashed key)", got, want)
	}
}

// Cross-check the engine against crypto/hmac for both supported
// primitives, including block-boundary key sizes.
func TestHMACMatchesStdlib(t *testing.T) {
	text := []byte("The quick brown fox jumps over the lazy dog")
	keySizes := []int{1, 20, 63, 64, 65, 128}

	for _, prim := range []struct {
		name    string
		newHash func() hash.Hash
	}{
		{"sha1", sha1.New},
		{"sha256", sha256.New},
	} {
		p := newPRF(prim.newHash)
		for _, n := range keySizes {
			key := repeatByte(0x5a, n)
			got := make([]byte, p.digestLen)
			p.sum(text, key, got)

			m := hmac.New(prim.newHash, key)
			m.Write(text)
			want := m.Sum(nil)

			if !bytes.Equal(got, want) {
				t.Errorf("%s key len %d: got %x, want %x", prim.name, n, got, want)
			}
		}
	}
}

// sum documents that text and out may alias; the chained derivation
// loop relies on that.
func TestHMACAliasedOutput(t *testing.T) {
	p := newPRF(sha1.New)
	key := []byte("password")

	buf := make([]byte, p.digestLen)
	copy(buf, []byte("initial digest value"))
	want := make([]byte, p.digestLen)
	p.sum(buf, key, want)
	p.sum(buf, key, buf)

	if !bytes.Equal(buf, want) {
		t.Errorf("aliased sum: got %x, want %x", buf, want)
	}
}
