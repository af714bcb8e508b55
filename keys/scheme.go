// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"io"

	"github.com/emmansun/gmsm/sm2"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/types"
)

// scheme is the primitive surface every single-key curve provides.
type scheme interface {
	// generate draws a fresh secret from rnd.
	generate(rnd io.Reader) ([]byte, error)
	// public derives the canonical public encoding from a secret.
	public(secret []byte) ([]byte, error)
	// parse validates a canonical public encoding.
	parse(raw []byte) error
	jwk(pub []byte) (JWK, error)
	fromJWK(j JWK) ([]byte, error)
	secretSize() int
}

// signingScheme is implemented by schemes whose profile declares an algorithm.
type signingScheme interface {
	scheme
	sign(secret, msg []byte) ([]byte, error)
	verify(pub, msg, sig []byte) bool
}

var (
	schemeEd25519    = ed25519Scheme{}
	schemeX25519     = x25519Scheme{}
	schemeP256       = newECScheme(types.CurveP256, elliptic.P256(), ecdh.P256(), nistSign, nistVerify)
	schemeP384       = newECScheme(types.CurveP384, elliptic.P384(), ecdh.P384(), nistSign, nistVerify)
	schemeP521       = newECScheme(types.CurveP521, elliptic.P521(), ecdh.P521(), nistSign, nistVerify)
	schemeSM2        = newECScheme(types.CurveSM2, sm2.P256(), nil, sm2Sign, sm2.Verify)
	schemeSecp256k1  = secp256k1Scheme{}
	schemeBls12381G1 = blsScheme{group: g1}
	schemeBls12381G2 = blsScheme{group: g2}
)

func schemeFor(c curves.Curve, op string) (scheme, error) {
	if !c.Valid() {
		return nil, &types.ErrUnknownCurve{Curve: c.String()}
	}
	switch c {
	case curves.Ed25519:
		return schemeEd25519, nil
	case curves.X25519:
		return schemeX25519, nil
	case curves.P256:
		return schemeP256, nil
	case curves.P384:
		return schemeP384, nil
	case curves.P521:
		return schemeP521, nil
	case curves.SM2:
		return schemeSM2, nil
	case curves.Secp256k1:
		return schemeSecp256k1, nil
	case curves.Bls12381G1:
		return schemeBls12381G1, nil
	case curves.Bls12381G2:
		return schemeBls12381G2, nil
	}
	return nil, &types.ErrUnsupportedCurve{Curve: c.String(), Operation: op}
}

func signerFor(c curves.Curve, op string) (signingScheme, error) {
	if !c.Valid() {
		return nil, &types.ErrUnknownCurve{Curve: c.String()}
	}
	if !curves.ProfileOf(c).CanSign() {
		return nil, &types.ErrUnsupportedCurve{Curve: c.String(), Operation: op}
	}
	s, err := schemeFor(c, op)
	if err != nil {
		return nil, err
	}
	ss, ok := s.(signingScheme)
	if !ok {
		return nil, &types.ErrUnsupportedCurve{Curve: c.String(), Operation: op}
	}
	return ss, nil
}
