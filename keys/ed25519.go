// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"crypto/ed25519"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/curve25519"

	"github.com/aumos-ai/didkey/types"
)

const x25519KeySize = curve25519.ScalarSize

type ed25519Scheme struct{}

func (ed25519Scheme) secretSize() int { return ed25519.SeedSize }

func (ed25519Scheme) generate(rnd io.Reader) ([]byte, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(rnd, seed); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return seed, nil
}

func (ed25519Scheme) public(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected %d-byte seed, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey), nil
}

func (ed25519Scheme) parse(raw []byte) error {
	if len(raw) != ed25519.PublicKeySize {
		return fmt.Errorf("expected %d key bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return fmt.Errorf("invalid Edwards point: %w", err)
	}
	return nil
}

func (ed25519Scheme) jwk(pub []byte) (JWK, error) {
	return JWK{Kty: types.KeyTypeOKP, Crv: string(types.CurveEd25519), X: b64(pub)}, nil
}

func (s ed25519Scheme) fromJWK(j JWK) ([]byte, error) {
	return okpFromJWK(j, s.parse)
}

func (ed25519Scheme) sign(seed, msg []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected %d-byte seed, got %d", ed25519.SeedSize, len(seed))
	}
	return ed25519.Sign(ed25519.NewKeyFromSeed(seed), msg), nil
}

func (ed25519Scheme) verify(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

type x25519Scheme struct{}

func (x25519Scheme) secretSize() int { return x25519KeySize }

func (x25519Scheme) generate(rnd io.Reader) ([]byte, error) {
	scalar := make([]byte, x25519KeySize)
	if _, err := io.ReadFull(rnd, scalar); err != nil {
		return nil, fmt.Errorf("read scalar: %w", err)
	}
	return scalar, nil
}

func (x25519Scheme) public(scalar []byte) ([]byte, error) {
	if len(scalar) != x25519KeySize {
		return nil, fmt.Errorf("expected %d-byte scalar, got %d", x25519KeySize, len(scalar))
	}
	return curve25519.X25519(scalar, curve25519.Basepoint)
}

func (x25519Scheme) parse(raw []byte) error {
	if len(raw) != curve25519.PointSize {
		return fmt.Errorf("expected %d key bytes, got %d", curve25519.PointSize, len(raw))
	}
	return nil
}

func (x25519Scheme) jwk(pub []byte) (JWK, error) {
	return JWK{Kty: types.KeyTypeOKP, Crv: string(types.CurveX25519), X: b64(pub)}, nil
}

func (s x25519Scheme) fromJWK(j JWK) ([]byte, error) {
	return okpFromJWK(j, s.parse)
}

func okpFromJWK(j JWK, parse func([]byte) error) ([]byte, error) {
	x, err := unb64("x", j.X)
	if err != nil {
		return nil, err
	}
	if err := parse(x); err != nil {
		return nil, err
	}
	return x, nil
}

// edwardsToMontgomeryPublic maps an Ed25519 public key to the X25519 public key
// of the same secret.
func edwardsToMontgomeryPublic(pub []byte) ([]byte, error) {
	p, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return nil, fmt.Errorf("invalid Edwards point: %w", err)
	}
	return p.BytesMontgomery(), nil
}

// edwardsToMontgomerySecret returns the X25519 scalar an Ed25519 seed expands to
// (RFC 8032 section 5.1.5, clamped).
func edwardsToMontgomerySecret(seed []byte) ([]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected %d-byte seed, got %d", ed25519.SeedSize, len(seed))
	}
	h := sha512.Sum512(seed)
	scalar := make([]byte, x25519KeySize)
	copy(scalar, h[:x25519KeySize])
	scalar[0] &= 248
	scalar[31] &= 127
	scalar[31] |= 64
	return scalar, nil
}
