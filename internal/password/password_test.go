package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal plaintext")
	}

	if !Verify("s3cret-pass", hash) {
		t.Fatal("expected matching password to verify")
	}
	if Verify("wrong-pass", hash) {
		t.Fatal("expected non-matching password to fail")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatal("expected distinct hashes for the same password")
	}
	if !Verify("same-password", h1) || !Verify("same-password", h2) {
		t.Fatal("both hashes should verify")
	}
}

func TestLongPasswordsHashAndVerify(t *testing.T) {
	long := strings.Repeat("a", 73)

	hash, err := Hash(long)
	if err != nil {
		t.Fatalf("hash of %d-byte password: %v", len(long), err)
	}
	if !Verify(long, hash) {
		t.Fatal("expected long password to verify against its own hash")
	}

	// Only the first 72 bytes are keyed; a password differing beyond that
	// boundary still verifies, one differing before it does not.
	if !Verify(strings.Repeat("a", 72)+"b", hash) {
		t.Fatal("expected password differing after byte 72 to verify")
	}
	if Verify(strings.Repeat("a", 71)+"x", hash) {
		t.Fatal("expected password differing within the first 72 bytes to fail")
	}

	veryLong := strings.Repeat("pass-phrase ", 40)
	hash2, err := Hash(veryLong)
	if err != nil {
		t.Fatalf("hash of %d-byte password: %v", len(veryLong), err)
	}
	if !Verify(veryLong, hash2) {
		t.Fatal("expected very long password to verify against its own hash")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		if Verify("anything", hash) {
			t.Fatalf("expected verify to fail for malformed hash %q", hash)
		}
	}
}
