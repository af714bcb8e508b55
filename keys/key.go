// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package keys holds did:key key material and the per-curve primitives that
// generate, encode, sign and verify with it.
//
// A key is either a PublicKey or a PrivateKey (which embeds its PublicKey).
// Public key bytes are always in the canonical did:key form for the curve:
// compressed points for the short-Weierstrass curves, the native fixed-length
// encoding for Ed25519, X25519 and the BLS12-381 groups.
package keys

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/types"
)

// Key is implemented by PublicKey and PrivateKey only.
type Key interface {
	// Public returns the public component.
	Public() PublicKey
	// Profile returns the registry profile of the key's curve.
	Profile() curves.Profile
	// JWK exports the key; private keys include "d".
	JWK() (JWK, error)

	isKey()
}

// PublicKey is a public key on a registered curve.
type PublicKey struct {
	Curve curves.Curve
	// Bytes is the canonical raw or compressed encoding.
	Bytes []byte
}

// PrivateKey pairs a public key with its secret component.
type PrivateKey struct {
	PublicKey
	// Secret is the Ed25519 seed, the X25519 or BLS scalar, or the EC scalar d.
	Secret []byte
}

func (k PublicKey) Public() PublicKey { return k }

func (k PublicKey) Profile() curves.Profile { return curves.ProfileOf(k.Curve) }

func (PublicKey) isKey() {}

// Equal reports whether two public keys are on the same curve with the same encoding.
func (k PublicKey) Equal(o PublicKey) bool {
	return k.Curve == o.Curve && bytes.Equal(k.Bytes, o.Bytes)
}

func (k PrivateKey) Public() PublicKey { return k.PublicKey }

func (PrivateKey) isKey() {}

// JWK is a JSON Web Key. Values are unpadded base64url.
type JWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y,omitempty"`
	D   string `json:"d,omitempty"`
}

// IsPrivate reports whether the JWK carries a private component.
func (j JWK) IsPrivate() bool {
	return j.D != ""
}

// JWK exports the public key.
func (k PublicKey) JWK() (JWK, error) {
	s, err := schemeFor(k.Curve, "export")
	if err != nil {
		return JWK{}, err
	}
	j, err := s.jwk(k.Bytes)
	if err != nil {
		return JWK{}, primitiveErr(k.Curve, "export", err)
	}
	return j, nil
}

// JWK exports the private key, including its public coordinates.
func (k PrivateKey) JWK() (JWK, error) {
	j, err := k.PublicKey.JWK()
	if err != nil {
		return JWK{}, err
	}
	s, _ := schemeFor(k.Curve, "export")
	j.D = b64(leftPad(k.Secret, s.secretSize()))
	return j, nil
}

// Generate creates a private key on curve c. When secure is non-nil it is used
// as the raw private component instead of drawing one from rnd; rnd defaults
// to crypto/rand.
func Generate(c curves.Curve, secure []byte, rnd io.Reader) (PrivateKey, error) {
	s, err := schemeFor(c, "generate")
	if err != nil {
		return PrivateKey{}, err
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	secret := append([]byte(nil), secure...)
	if secure == nil {
		secret, err = s.generate(rnd)
		if err != nil {
			return PrivateKey{}, primitiveErr(c, "generate", err)
		}
	}

	pub, err := s.public(secret)
	if err != nil {
		return PrivateKey{}, primitiveErr(c, "generate", err)
	}
	return PrivateKey{
		PublicKey: PublicKey{Curve: c, Bytes: pub},
		Secret:    secret,
	}, nil
}

// NewPublicKey validates raw as a canonical public key encoding for curve c.
func NewPublicKey(c curves.Curve, raw []byte) (PublicKey, error) {
	s, err := schemeFor(c, "decode")
	if err != nil {
		return PublicKey{}, err
	}
	if err := s.parse(raw); err != nil {
		return PublicKey{}, primitiveErr(c, "decode", err)
	}
	return PublicKey{Curve: c, Bytes: append([]byte(nil), raw...)}, nil
}

// FromJWK imports a JWK. The result is a PrivateKey when the JWK has "d".
func FromJWK(j JWK) (Key, error) {
	p, err := curves.LookupByName(j.Crv)
	if err != nil {
		return nil, err
	}
	s, err := schemeFor(p.Curve, "import")
	if err != nil {
		return nil, err
	}
	if want := keyType(p.Curve); j.Kty != want {
		return nil, &types.ErrInvalidFormat{
			Input:  j.Kty,
			Reason: fmt.Sprintf("%s keys must have kty %q", p.Name, want),
		}
	}

	pub, err := s.fromJWK(j)
	if err != nil {
		return nil, primitiveErr(p.Curve, "import", err)
	}
	if !j.IsPrivate() {
		return PublicKey{Curve: p.Curve, Bytes: pub}, nil
	}

	secret, err := unb64("d", j.D)
	if err != nil {
		return nil, primitiveErr(p.Curve, "import", err)
	}
	derived, err := s.public(secret)
	if err != nil {
		return nil, primitiveErr(p.Curve, "import", err)
	}
	if !bytes.Equal(derived, pub) {
		return nil, primitiveErr(p.Curve, "import", fmt.Errorf("private key does not match public key"))
	}
	return PrivateKey{
		PublicKey: PublicKey{Curve: p.Curve, Bytes: pub},
		Secret:    secret,
	}, nil
}

// Sign signs msg with priv. For curves whose profile declares a digest, msg is
// expected to be that digest already; signatures are IEEE P1363 (r‖s) for the
// ECDSA family.
func Sign(priv PrivateKey, msg []byte) ([]byte, error) {
	s, err := signerFor(priv.Curve, "sign")
	if err != nil {
		return nil, err
	}
	sig, err := s.sign(priv.Secret, msg)
	if err != nil {
		return nil, primitiveErr(priv.Curve, "sign", err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature of msg by pub. A malformed
// signature is reported as false, not as an error.
func Verify(pub PublicKey, msg, sig []byte) (bool, error) {
	s, err := signerFor(pub.Curve, "verify")
	if err != nil {
		return false, err
	}
	return s.verify(pub.Bytes, msg, sig), nil
}

// keyType returns the JWK "kty" used for curve c.
func keyType(c curves.Curve) string {
	switch c {
	case curves.Ed25519, curves.X25519:
		return types.KeyTypeOKP
	default:
		return types.KeyTypeEC
	}
}

func primitiveErr(c curves.Curve, op string, err error) error {
	return &types.ErrPrimitive{Curve: c.String(), Operation: op, Err: err}
}

func b64(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func unb64(field, s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode jwk %s: %w", field, err)
	}
	return b, nil
}

// leftPad returns b left-padded with zeros to size bytes.
func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
