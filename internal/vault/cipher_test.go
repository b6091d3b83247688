package vault

import (
	"bytes"
	"testing"
)

func TestTransform_SelfInverse(t *testing.T) {
	key := DeriveKey("hunter22", bytes.Repeat([]byte{0xAB}, SaltSize))
	plain := []byte("some plaintext spanning more than the key byte window .................")

	scrambled := Transform(plain, key)
	if bytes.Equal(scrambled, plain) {
		t.Fatalf("transform left data unchanged")
	}
	back := Transform(scrambled, key)
	if !bytes.Equal(back, plain) {
		t.Fatalf("double transform did not restore plaintext: got %q", back)
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)
	a := DeriveKey("pw", salt)
	b := DeriveKey("pw", salt)
	if !bytes.Equal(a, b) {
		t.Fatalf("same password+salt derived different keys")
	}
	c := DeriveKey("pw", bytes.Repeat([]byte{0x02}, SaltSize))
	if bytes.Equal(a, c) {
		t.Fatalf("different salt derived the same key")
	}
}

func TestSealUnseal_RoundTrip(t *testing.T) {
	plain := []byte("top secret contents")
	sealed, err := Seal("pass1234", plain)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(sealed) != SaltSize+len(plain) {
		t.Fatalf("sealed length = %d, want %d", len(sealed), SaltSize+len(plain))
	}
	out, err := Unseal("pass1234", sealed)
	if err != nil {
		t.Fatalf("Unseal: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Fatalf("round trip mismatch: got %q", out)
	}
}

func TestSeal_FreshSaltPerCall(t *testing.T) {
	plain := []byte("same input")
	a, err := Seal("pw", plain)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	b, err := Seal("pw", plain)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Equal(a[:SaltSize], b[:SaltSize]) {
		t.Fatalf("two seals reused the same salt")
	}
}

func TestUnseal_TooShort(t *testing.T) {
	if _, err := Unseal("pw", []byte("short")); err != ErrSealedTooShort {
		t.Fatalf("expected ErrSealedTooShort, got %v", err)
	}
}

func TestHashPassword_HexSHA256(t *testing.T) {
	got := HashPassword("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("HashPassword(abc) = %q, want %q", got, want)
	}
}
