// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// EncryptedPlaceholder is returned by [ContentCipher.Decrypt] in place of
// content that cannot be decrypted.
const EncryptedPlaceholder = "[Encrypted Content]"

// KeySize is the length in bytes of an AES-256 key.
const KeySize = 32

const recordSeparator = ":"

var (
	// ErrInvalidKey is returned when key material is neither 32 raw bytes
	// nor 64 hex characters.
	ErrInvalidKey = errors.New("encryption key must be 32 bytes or 64 hex characters")
	// ErrMalformedRecord is returned when a record is not hex(iv):hex(ct).
	ErrMalformedRecord = errors.New("malformed encrypted record")
	// ErrUndecryptable is returned when no configured key opens a record.
	ErrUndecryptable = errors.New("record cannot be decrypted with any configured key")
)

// ParseKey decodes configured key material. 64 hex characters are decoded;
// a 32-character string is used as raw bytes.
func ParseKey(key string) ([]byte, error) {
	if len(key) == 2*KeySize {
		decoded, err := hex.DecodeString(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
		return decoded, nil
	}

	if len(key) == KeySize {
		return []byte(key), nil
	}

	return nil, ErrInvalidKey
}

// GenerateKey returns a fresh random key in the 64 hex character form
// accepted by [ParseKey].
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// contentCipher is the AES-256-CBC implementation of [ContentCipher].
type contentCipher struct {
	// blocks[0] is the primary key, the rest are retired keys.
	blocks []cipher.Block
	random io.Reader
}

// NewContentCipher builds a [ContentCipher] from a primary key and any
// number of retired keys. Every key must be exactly [KeySize] bytes.
func NewContentCipher(primary []byte, previous ...[]byte) (ContentCipher, error) {
	keys := append([][]byte{primary}, previous...)
	blocks := make([]cipher.Block, 0, len(keys))

	for i, key := range keys {
		if len(key) != KeySize {
			return nil, fmt.Errorf("key #%d: %w", i, ErrInvalidKey)
		}
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("key #%d: %w", i, err)
		}
		blocks = append(blocks, block)
	}

	return &contentCipher{
		blocks: blocks,
		random: rand.Reader,
	}, nil
}

// NewContentCipherFromConfig parses textual key material with [ParseKey]
// and builds a [ContentCipher].
func NewContentCipherFromConfig(primary string, previous []string) (ContentCipher, error) {
	primaryKey, err := ParseKey(primary)
	if err != nil {
		return nil, fmt.Errorf("primary key: %w", err)
	}

	previousKeys := make([][]byte, 0, len(previous))
	for i, key := range previous {
		parsed, err := ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("previous key #%d: %w", i, err)
		}
		previousKeys = append(previousKeys, parsed)
	}

	return NewContentCipher(primaryKey, previousKeys...)
}

func (c *contentCipher) Encrypt(plaintext string) (string, error) {
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("error generating IV: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.blocks[0], iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + recordSeparator + hex.EncodeToString(ciphertext), nil
}

func (c *contentCipher) Decrypt(record string) string {
	plaintext, _, err := c.Open(record)
	if err != nil {
		return EncryptedPlaceholder
	}

	return plaintext
}

func (c *contentCipher) Open(record string) (string, int, error) {
	iv, ciphertext, err := splitRecord(record)
	if err != nil {
		return "", -1, err
	}

	for i, block := range c.blocks {
		if plaintext, ok := openWith(block, iv, ciphertext); ok {
			return plaintext, i, nil
		}
	}

	return "", -1, ErrUndecryptable
}

func splitRecord(record string) (iv, ciphertext []byte, err error) {
	ivHex, ctHex, found := strings.Cut(record, recordSeparator)
	if !found {
		return nil, nil, ErrMalformedRecord
	}

	iv, err = hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return nil, nil, ErrMalformedRecord
	}

	ciphertext, err = hex.DecodeString(ctHex)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, nil, ErrMalformedRecord
	}

	return iv, ciphertext, nil
}

// openWith accepts a key only when the padding is well formed and the
// recovered bytes are valid UTF-8.
func openWith(block cipher.Block, iv, ciphertext []byte) (string, bool) {
	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(unpadded) {
		return "", false
	}

	return string(unpadded), true
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, false
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}

	return data[:len(data)-padLen], true
}
