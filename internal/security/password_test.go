package security

import "testing"

func TestPasswordHashVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if !VerifyPassword("s3cret", hash) {
		t.Fatalf("expected password to verify")
	}

	if VerifyPassword("wrong", hash) {
		t.Fatalf("expected password to fail")
	}
}

func TestVerifyMalformedHashFailsClosed(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$2b$xx$garbage",
	}

	for _, encoded := range cases {
		if VerifyPassword("anything", encoded) {
			t.Fatalf("expected malformed hash %q to fail verification", encoded)
		}
	}
}
