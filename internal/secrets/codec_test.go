// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

package secrets

import (
	"errors"
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(testKey)
	if err != nil {
		t.Fatalf("failed to build codec: %v", err)
	}
	return c
}

func strPtr(s string) *string {
	return &s
}

func TestNewCodec_KeyValidation(t *testing.T) {
	testCases := []struct {
		name        string
		key         string
		expectedErr bool
	}{
		{name: "raw 32 byte key", key: testKey, expectedErr: false},
		{name: "hex encoded 32 byte key", key: strings.Repeat("ab", 32), expectedErr: false},
		{name: "empty key", key: "", expectedErr: true},
		{name: "short key", key: "too-short", expectedErr: true},
		{name: "long key", key: strings.Repeat("x", 33), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCodec(tc.key)
			if tc.expectedErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	plaintexts := []string{
		"a",
		"AIzaSyB-some-api-key",
		"exactly sixteen!",
		strings.Repeat("long secret ", 50),
		"emojis too ☕🍞",
	}

	for _, pt := range plaintexts {
		record, err := c.Encrypt(strPtr(pt))
		if err != nil {
			t.Fatalf("encrypt(%q): %v", pt, err)
		}
		if record == nil {
			t.Fatalf("encrypt(%q) returned nil record", pt)
		}

		got, err := c.Decrypt(record)
		if err != nil {
			t.Fatalf("decrypt of %q record: %v", pt, err)
		}
		if got == nil || *got != pt {
			t.Errorf("round trip mismatch: got %v, want %q", got, pt)
		}
	}
}

func TestCodec_NonDeterministic(t *testing.T) {
	c := newTestCodec(t)

	first, err := c.Encrypt(strPtr("same secret"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Encrypt(strPtr("same secret"))
	if err != nil {
		t.Fatal(err)
	}

	if *first == *second {
		t.Error("two encryptions of the same plaintext produced identical records")
	}
}

func TestCodec_RecordShape(t *testing.T) {
	c := newTestCodec(t)

	record, err := c.Encrypt(strPtr("shape check"))
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(*record, ":")
	if len(parts) != 2 {
		t.Fatalf("expected iv:payload record, got %q", *record)
	}
	if len(parts[0]) != 32 {
		t.Errorf("expected 16 byte hex IV, got %d hex chars", len(parts[0]))
	}
}

func TestCodec_NilHandling(t *testing.T) {
	c := newTestCodec(t)

	if record, err := c.Encrypt(nil); err != nil || record != nil {
		t.Errorf("encrypt(nil) = (%v, %v), want (nil, nil)", record, err)
	}
	if record, err := c.Encrypt(strPtr("")); err != nil || record != nil {
		t.Errorf("encrypt(empty) = (%v, %v), want (nil, nil)", record, err)
	}
	if got, err := c.Decrypt(nil); err != nil || got != nil {
		t.Errorf("decrypt(nil) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestCodec_MalformedRecords(t *testing.T) {
	c := newTestCodec(t)

	records := []string{
		"not-a-valid-record",
		"onlyonepart",
		"a:b:c",
		"zzzz:abcd",
		"abcd:zzzz",
		"abcd:abcd",
		strings.Repeat("ab", 16) + ":abcd",
		strings.Repeat("ab", 16) + ":",
	}

	for _, r := range records {
		_, err := c.Decrypt(strPtr(r))
		if err == nil {
			t.Errorf("decrypt(%q) succeeded, want error", r)
			continue
		}
		if !errors.Is(err, ErrInvalidCiphertext) {
			t.Errorf("decrypt(%q) error %v is not ErrInvalidCiphertext", r, err)
		}
	}
}

func TestCodec_KeyMismatch(t *testing.T) {
	c := newTestCodec(t)
	record, err := c.Encrypt(strPtr("sealed under another key"))
	if err != nil {
		t.Fatal(err)
	}

	other, err := NewCodec("ffffffffffffffffffffffffffffffff")
	if err != nil {
		t.Fatal(err)
	}

	got, err := other.Decrypt(record)
	if err == nil {
		if got != nil && *got == "sealed under another key" {
			t.Error("decrypt with wrong key recovered the plaintext")
		}
		// CBC padding can accidentally validate; garbage output is acceptable
		// as long as we never return the original plaintext.
		return
	}
	if !errors.Is(err, ErrInvalidCiphertext) {
		t.Errorf("wrong key error %v is not ErrInvalidCiphertext", err)
	}
}
