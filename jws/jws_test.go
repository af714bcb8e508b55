// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package jws

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

func signingKeys(t *testing.T) map[string]keys.PrivateKey {
	t.Helper()
	out := make(map[string]keys.PrivateKey)
	for _, p := range curves.All() {
		if !p.CanSign() {
			continue
		}
		k, err := keys.Generate(p.Curve, nil, nil)
		require.NoError(t, err)
		out[p.String()] = k
	}
	return out
}

func TestSignVerify(t *testing.T) {
	payloads := [][]byte{
		[]byte("hello world."),
		{},
		{0x00, 0xff, '.', '.', 0x7f},
	}
	for name, k := range signingKeys(t) {
		t.Run(name, func(t *testing.T) {
			for _, payload := range payloads {
				token, err := Sign(payload, k)
				require.NoError(t, err)

				parts := strings.Split(token, ".")
				require.Len(t, parts, 3)
				assert.Empty(t, parts[1], "payload is detached")

				hdr, err := base64.RawURLEncoding.DecodeString(parts[0])
				require.NoError(t, err)
				assert.Equal(t, `{"alg":"`+string(k.Profile().Algorithm)+`","b64":false,"crit":["b64"]}`, string(hdr))

				ok, err := Verify(payload, token, k.Public())
				require.NoError(t, err)
				assert.True(t, ok)

				ok, err = Verify(append(payload, 'x'), token, k.Public())
				require.NoError(t, err)
				assert.False(t, ok, "altered payload")
			}
		})
	}
}

func TestSignVerifyJWK(t *testing.T) {
	k, err := keys.Generate(curves.Secp256k1, nil, nil)
	require.NoError(t, err)
	privJWK, err := k.JWK()
	require.NoError(t, err)
	pubJWK, err := k.Public().JWK()
	require.NoError(t, err)

	token, err := SignJWK([]byte("hello world."), privJWK)
	require.NoError(t, err)

	ok, err := VerifyJWK([]byte("hello world."), token, pubJWK)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = SignJWK([]byte("x"), pubJWK)
	var format *types.ErrInvalidFormat
	require.True(t, errors.As(err, &format))
}

func TestVerifyWrongKey(t *testing.T) {
	a, err := keys.Generate(curves.P384, nil, nil)
	require.NoError(t, err)
	b, err := keys.Generate(curves.P384, nil, nil)
	require.NoError(t, err)

	token, err := Sign([]byte("payload"), a)
	require.NoError(t, err)
	ok, err := Verify([]byte("payload"), token, b.Public())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyAlgorithmMismatch(t *testing.T) {
	ed, err := keys.Generate(curves.Ed25519, nil, nil)
	require.NoError(t, err)
	p256, err := keys.Generate(curves.P256, nil, nil)
	require.NoError(t, err)

	token, err := Sign([]byte("payload"), ed)
	require.NoError(t, err)

	_, err = Verify([]byte("payload"), token, p256.Public())
	var mismatch *types.ErrAlgorithmMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "ES256", mismatch.Expected)
	assert.Equal(t, "EdDSA", mismatch.Got)
}

func TestVerifyFormatErrors(t *testing.T) {
	k, err := keys.Generate(curves.Ed25519, nil, nil)
	require.NoError(t, err)
	token, err := Sign([]byte("payload"), k)
	require.NoError(t, err)
	parts := strings.Split(token, ".")

	encode := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"two parts":         parts[0] + "." + parts[2],
		"attached payload":  parts[0] + ".cGF5bG9hZA." + parts[2],
		"four parts":        token + ".",
		"header not base64": "!!!.." + parts[2],
		"header not json":   encode("alg") + ".." + parts[2],
		"b64 true":          encode(`{"alg":"EdDSA","b64":true,"crit":["b64"]}`) + ".." + parts[2],
		"b64 missing":       encode(`{"alg":"EdDSA","crit":["b64"]}`) + ".." + parts[2],
		"crit missing":      encode(`{"alg":"EdDSA","b64":false}`) + ".." + parts[2],
		"crit extra":        encode(`{"alg":"EdDSA","b64":false,"crit":["b64","exp"]}`) + ".." + parts[2],
		"member case":       encode(`{"ALG":"EdDSA","B64":false,"CRIT":["b64"]}`) + ".." + parts[2],
		"extra member":      encode(`{"alg":"EdDSA","b64":false,"crit":["b64"],"kid":"k"}`) + ".." + parts[2],
		"b64 null":          encode(`{"alg":"EdDSA","b64":null,"crit":["b64"]}`) + ".." + parts[2],
		"signature base64":  parts[0] + "..***",
	}
	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Verify([]byte("payload"), bad, k.Public())
			var format *types.ErrInvalidSignatureFormat
			require.True(t, errors.As(err, &format), "got %v", err)
		})
	}
}

func TestVerifyRejectsCaseFoldedHeader(t *testing.T) {
	k, err := keys.Generate(curves.Ed25519, nil, nil)
	require.NoError(t, err)

	// A correct signature over a header whose member names differ only in
	// case must still be rejected.
	payload := []byte("payload")
	encodedHeader := base64.RawURLEncoding.EncodeToString([]byte(`{"ALG":"EdDSA","B64":false,"CRIT":["b64"]}`))
	sig, err := keys.Sign(k, append([]byte(encodedHeader+"."), payload...))
	require.NoError(t, err)
	token := encodedHeader + ".." + base64.RawURLEncoding.EncodeToString(sig)

	ok, err := Verify(payload, token, k.Public())
	var format *types.ErrInvalidSignatureFormat
	require.True(t, errors.As(err, &format), "got %v", err)
	assert.False(t, ok)
}

func TestUnknownCurve(t *testing.T) {
	bogus := keys.PublicKey{Curve: curves.Curve(42), Bytes: make([]byte, 32)}

	_, err := Verify([]byte("payload"), "a..b", bogus)
	var unknown *types.ErrUnknownCurve
	require.True(t, errors.As(err, &unknown))

	_, err = Sign([]byte("payload"), keys.PrivateKey{PublicKey: bogus, Secret: make([]byte, 32)})
	require.True(t, errors.As(err, &unknown))
}

func TestUnsupportedCurves(t *testing.T) {
	x, err := keys.Generate(curves.X25519, nil, nil)
	require.NoError(t, err)

	_, err = Sign([]byte("payload"), x)
	var unsupported *types.ErrUnsupportedCurve
	require.True(t, errors.As(err, &unsupported))

	_, err = Verify([]byte("payload"), "a..b", x.Public())
	require.True(t, errors.As(err, &unsupported))
}
