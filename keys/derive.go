// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"fmt"

	"github.com/cloudflare/circl/ecc/bls12381"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/types"
)

// Expand returns primary followed by any keys implied by it. An Ed25519 key
// implies its X25519 key-agreement companion, converted from the same key:
// a private key yields a private companion and a public key a public one.
func Expand(primary Key) ([]Key, error) {
	if primary.Public().Curve != curves.Ed25519 {
		return []Key{primary}, nil
	}

	switch k := primary.(type) {
	case PrivateKey:
		scalar, err := edwardsToMontgomerySecret(k.Secret)
		if err != nil {
			return nil, primitiveErr(curves.X25519, "derive", err)
		}
		companion, err := Generate(curves.X25519, scalar, nil)
		if err != nil {
			return nil, err
		}
		return []Key{primary, companion}, nil
	case PublicKey:
		pub, err := edwardsToMontgomeryPublic(k.Bytes)
		if err != nil {
			return nil, primitiveErr(curves.X25519, "derive", err)
		}
		return []Key{primary, PublicKey{Curve: curves.X25519, Bytes: pub}}, nil
	}
	return nil, fmt.Errorf("keys: unexpected key type %T", primary)
}

// PairG2 returns the Bls12381G2 key sharing g1's scalar.
func PairG2(g1Key PrivateKey) (PrivateKey, error) {
	if g1Key.Curve != curves.Bls12381G1 {
		return PrivateKey{}, &types.ErrUnsupportedCurve{Curve: g1Key.Curve.String(), Operation: "pair"}
	}
	return Generate(curves.Bls12381G2, g1Key.Secret, nil)
}

// SplitComposite splits a bls12381 G1‖G2 payload. The G1 point occupies the
// first 48 bytes and G2 the remainder.
func SplitComposite(raw []byte) (PublicKey, PublicKey, error) {
	if len(raw) <= bls12381.G1SizeCompressed {
		return PublicKey{}, PublicKey{}, &types.ErrInvalidFormat{
			Input:  fmt.Sprintf("%d bytes", len(raw)),
			Reason: "bls12381 composite key is too short",
		}
	}
	g1Key, err := NewPublicKey(curves.Bls12381G1, raw[:bls12381.G1SizeCompressed])
	if err != nil {
		return PublicKey{}, PublicKey{}, err
	}
	g2Key, err := NewPublicKey(curves.Bls12381G2, raw[bls12381.G1SizeCompressed:])
	if err != nil {
		return PublicKey{}, PublicKey{}, err
	}
	return g1Key, g2Key, nil
}
