// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"errors"
	"strings"
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

func TestFingerprintPrefixes(t *testing.T) {
	want := map[curves.Curve]string{
		curves.Ed25519:    "z6Mk",
		curves.X25519:     "z6LS",
		curves.P256:       "zDn",
		curves.P384:       "z82",
		curves.P521:       "z2J9",
		curves.Secp256k1:  "zQ3s",
		curves.Bls12381G1: "z3tE",
		curves.Bls12381G2: "zUC7",
	}
	for c, prefix := range want {
		k, err := keys.Generate(c, nil, nil)
		require.NoError(t, err)
		fp, err := Fingerprint(k)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fp, prefix), "%s fingerprint %s", c, fp)

		did, err := EncodeDID(k.Public())
		require.NoError(t, err)
		assert.Equal(t, "did:key:"+fp, did)
	}
}

func TestEncodeDecodeDID(t *testing.T) {
	for _, p := range curves.All() {
		if p.Composite {
			continue
		}
		k, err := keys.Generate(p.Curve, nil, nil)
		require.NoError(t, err)
		did, err := EncodeDID(k)
		require.NoError(t, err)

		got, raw, err := DecodeDID(did)
		require.NoError(t, err)
		assert.Equal(t, p.Curve, got.Curve)
		assert.Equal(t, k.Bytes, raw)

		_, withFragment, err := DecodeDID(did + "#" + strings.TrimPrefix(did, "did:key:"))
		require.NoError(t, err)
		assert.Equal(t, raw, withFragment)
	}
}

func TestCompositeFingerprint(t *testing.T) {
	g1Key, err := keys.Generate(curves.Bls12381G1, nil, nil)
	require.NoError(t, err)
	g2Key, err := keys.PairG2(g1Key)
	require.NoError(t, err)

	fp, err := CompositeFingerprint(g1Key, g2Key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(fp, "z5Tc"), fp)

	p, raw, err := DecodeDID("did:key:" + fp)
	require.NoError(t, err)
	assert.True(t, p.Composite)
	assert.Equal(t, append(append([]byte(nil), g1Key.Bytes...), g2Key.Bytes...), raw)

	_, err = CompositeFingerprint(g2Key, g1Key)
	var unsupported *types.ErrUnsupportedCurve
	require.True(t, errors.As(err, &unsupported))
}

func TestDecodeDIDErrors(t *testing.T) {
	unknownCode, err := multibase.Encode(multibase.Base58BTC, []byte{0x12, 0x34, 1, 2, 3})
	require.NoError(t, err)
	base32, err := multibase.Encode(multibase.Base32, []byte{0xed, 0x01, 1, 2, 3})
	require.NoError(t, err)
	short, err := multibase.Encode(multibase.Base58BTC, []byte{0xed})
	require.NoError(t, err)

	for _, id := range []string{
		"did:web:example.com",
		"key:z6Mk",
		"did:key:",
		"did:key:z0OIl",
		"did:key:" + unknownCode,
		"did:key:" + base32,
		"did:key:" + short,
	} {
		_, _, err := DecodeDID(id)
		var format *types.ErrInvalidFormat
		assert.True(t, errors.As(err, &format), "%s: %v", id, err)
	}
}

func TestFingerprintUnknownCurve(t *testing.T) {
	bogus := keys.PublicKey{Curve: curves.Curve(42), Bytes: make([]byte, 32)}

	_, err := Fingerprint(bogus)
	var unknown *types.ErrUnknownCurve
	require.True(t, errors.As(err, &unknown))

	_, err = EncodeDID(bogus)
	require.True(t, errors.As(err, &unknown))

	require.NotPanics(t, func() {
		_, err = BuildDIDDocument("did:key:z6Mk", []keys.Key{bogus})
	})
	require.True(t, errors.As(err, &unknown))
}

func TestParseDIDMethod(t *testing.T) {
	m, err := ParseDIDMethod("did:key:z6Mk")
	require.NoError(t, err)
	assert.Equal(t, types.DIDMethodKey, m)

	m, err = ParseDIDMethod("did:web:example.com")
	require.NoError(t, err)
	assert.Equal(t, types.DIDMethodWeb, m)

	_, err = ParseDIDMethod("did:example:123")
	var unsupported *types.ErrUnsupportedDIDMethod
	require.True(t, errors.As(err, &unsupported))

	_, err = ParseDIDMethod("not-a-did")
	var invalid *types.ErrInvalidDID
	require.True(t, errors.As(err, &invalid))
}
