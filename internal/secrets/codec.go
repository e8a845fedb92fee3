// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

// Package secrets implements the at-rest protection scheme for tenant
// credential columns: AES-256-CBC with a fresh random IV per record,
// serialized as hex(iv):hex(ciphertext).
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const keySize = 32

// ErrInvalidCiphertext marks records that cannot be decrypted: wrong field
// count, bad hex, wrong IV length, a payload that is not block aligned, or
// bad padding. A key mismatch surfaces the same way, CBC cannot tell the
// two apart.
var ErrInvalidCiphertext = errors.New("invalid ciphertext record")

type Codec struct {
	key []byte
}

// NewCodec builds a codec from the configured key. The key must be exactly
// 32 bytes, given either raw or hex encoded. There is no fallback: a
// missing or malformed key is a startup failure, never a generated one.
func NewCodec(key string) (*Codec, error) {
	if key == "" {
		return nil, errors.New("encryption key is required")
	}

	raw := []byte(key)
	if len(raw) == keySize*2 {
		if decoded, err := hex.DecodeString(key); err == nil {
			raw = decoded
		}
	}
	if len(raw) != keySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keySize, len(raw))
	}

	return &Codec{key: raw}, nil
}

// Encrypt seals a plaintext secret into a ciphertext record. A nil or empty
// input returns nil, the "no secret" sentinel, so an empty ciphertext is
// never written. Two calls with the same plaintext yield different records.
func (c *Codec) Encrypt(plaintext *string) (*string, error) {
	if plaintext == nil || *plaintext == "" {
		return nil, nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	padded := pad([]byte(*plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	record := hex.EncodeToString(iv) + ":" + hex.EncodeToString(out)
	return &record, nil
}

// Decrypt opens a ciphertext record produced by Encrypt. A nil input
// returns nil. Any malformed record fails with ErrInvalidCiphertext.
func (c *Codec) Decrypt(record *string) (*string, error) {
	if record == nil {
		return nil, nil
	}

	parts := strings.Split(*record, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: expected iv:payload, got %d fields", ErrInvalidCiphertext, len(parts))
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad IV encoding", ErrInvalidCiphertext)
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: IV must be %d bytes", ErrInvalidCiphertext, aes.BlockSize)
	}

	payload, err := hex.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad payload encoding", ErrInvalidCiphertext)
	}
	if len(payload) == 0 || len(payload)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: payload is not block aligned", ErrInvalidCiphertext)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(payload))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, payload)

	unpadded, err := unpad(out)
	if err != nil {
		return nil, err
	}

	plaintext := string(unpadded)
	return &plaintext, nil
}

// pad applies PKCS#7 padding up to the AES block size.
func pad(in []byte) []byte {
	n := aes.BlockSize - len(in)%aes.BlockSize
	out := make([]byte, len(in)+n)
	copy(out, in)
	for i := len(in); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func unpad(in []byte) ([]byte, error) {
	n := int(in[len(in)-1])
	if n == 0 || n > aes.BlockSize || n > len(in) {
		return nil, fmt.Errorf("%w: bad padding", ErrInvalidCiphertext)
	}
	for _, b := range in[len(in)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: bad padding", ErrInvalidCiphertext)
		}
	}
	return in[:len(in)-n], nil
}
