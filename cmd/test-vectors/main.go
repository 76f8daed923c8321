package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"keystretch/pkg/pbkdf2"
)

// Published PBKDF2-HMAC-SHA1 vectors from RFC 6070. A mismatch means
// the build is not producing legacy-compatible keys.
var vectors = []struct {
	password string
	salt     string
	rounds   int
	keyLen   int
	want     string
}{
	{"password", "salt", 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
	{"password", "salt", 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
	{"password", "salt", 4096, 20, "4b007901b765489abead49d926f721d065a429c1"},
	{"passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt", 4096, 25, "3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038"},
	{"pass\x00word", "sa\x00lt", 4096, 16, "56fa6aa75548099dcc37d7f03425e0c3"},
}

func main() {
	failures := 0

	for i, v := range vectors {
		key, err := pbkdf2.DeriveKey([]byte(v.password), []byte(v.salt), v.rounds, v.keyLen)
		if err != nil {
			fmt.Printf("Vector %d failed: %v\n", i+1, err)
			failures++
			continue
		}
		got := hex.EncodeToString(key)
		if got != v.want {
			fmt.Printf("Vector %d mismatch:\n  got:  %s\n  want: %s\n", i+1, got, v.want)
			failures++
			continue
		}
		fmt.Printf("Vector %d ok (rounds=%d, length=%d)\n", i+1, v.rounds, v.keyLen)
	}

	if failures > 0 {
		fmt.Printf("Vector check failed: %d of %d mismatched\n", failures, len(vectors))
		os.Exit(1)
	}
	fmt.Printf("Vector check successful: %d vectors verified\n", len(vectors))
}
