package csrf

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateKey(t *testing.T) {
	a := GenerateKey()
	b := GenerateKey()
	if len(a) != KeyLength || len(b) != KeyLength {
		t.Fatalf("key lengths = %d, %d, want %d", len(a), len(b), KeyLength)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two generated keys are identical")
	}
}

func TestKeyFromBytesRejectsShortInput(t *testing.T) {
	_, err := KeyFromBytes([]byte("too short"))
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
}

func TestKeyFromBytesTruncatesLongInput(t *testing.T) {
	material := bytes.Repeat([]byte{0xab}, KeyLength+16)
	key, err := KeyFromBytes(material)
	if err != nil {
		t.Fatalf("KeyFromBytes: %v", err)
	}
	if !bytes.Equal(key, material[:KeyLength]) {
		t.Fatalf("key is not the first %d bytes of the input", KeyLength)
	}
}

func TestNewRejectsWrongLengthKey(t *testing.T) {
	_, err := New(Config{Key: []byte("short")})
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
}

func TestNewGeneratesKeyWhenNil(t *testing.T) {
	p, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := p.factory.newToken(); err != nil {
		t.Fatalf("newToken with generated key: %v", err)
	}
}
