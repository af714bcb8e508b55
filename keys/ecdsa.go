// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/emmansun/gmsm/sm2"

	"github.com/aumos-ai/didkey/types"
)

type (
	ecSignFunc   func(priv *ecdsa.PrivateKey, digest []byte) (r, s *big.Int, err error)
	ecVerifyFunc func(pub *ecdsa.PublicKey, digest []byte, r, s *big.Int) bool
)

// ecScheme covers the short-Weierstrass curves: the NIST curves and SM2.
// Public keys are SEC1 compressed points. Point arithmetic on the NIST curves
// goes through crypto/ecdh; nist is nil for SM2, whose sm2.P256 curve does its
// own arithmetic.
type ecScheme struct {
	name   types.CurveName
	curve  elliptic.Curve
	nist   ecdh.Curve
	size   int
	signFn ecSignFunc
	verFn  ecVerifyFunc
}

func newECScheme(name types.CurveName, curve elliptic.Curve, nist ecdh.Curve, sign ecSignFunc, verify ecVerifyFunc) ecScheme {
	return ecScheme{
		name:   name,
		curve:  curve,
		nist:   nist,
		size:   (curve.Params().BitSize + 7) / 8,
		signFn: sign,
		verFn:  verify,
	}
}

func nistSign(priv *ecdsa.PrivateKey, digest []byte) (*big.Int, *big.Int, error) {
	return ecdsa.Sign(rand.Reader, priv, digest)
}

func nistVerify(pub *ecdsa.PublicKey, digest []byte, r, s *big.Int) bool {
	return ecdsa.Verify(pub, digest, r, s)
}

// sm2Sign signs a precomputed SM3 digest. No ZA prefix is mixed in; the
// digest covers the JWS signing input only.
func sm2Sign(priv *ecdsa.PrivateKey, digest []byte) (*big.Int, *big.Int, error) {
	return sm2.Sign(rand.Reader, priv, digest)
}

func (s ecScheme) secretSize() int { return s.size }

// generate samples d uniformly from [1, N-1] by rejection.
func (s ecScheme) generate(rnd io.Reader) ([]byte, error) {
	n := s.curve.Params().N
	excess := uint(s.size*8 - n.BitLen())
	buf := make([]byte, s.size)
	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return nil, fmt.Errorf("read scalar: %w", err)
		}
		buf[0] &= byte(0xff >> excess)
		d := new(big.Int).SetBytes(buf)
		if d.Sign() > 0 && d.Cmp(n) < 0 {
			return d.FillBytes(make([]byte, s.size)), nil
		}
	}
}

func (s ecScheme) privateKey(secret []byte) (*ecdsa.PrivateKey, error) {
	if len(secret) > s.size {
		return nil, fmt.Errorf("expected at most %d scalar bytes, got %d", s.size, len(secret))
	}
	d := new(big.Int).SetBytes(secret)
	if d.Sign() == 0 || d.Cmp(s.curve.Params().N) >= 0 {
		return nil, fmt.Errorf("scalar out of range for %s", s.name)
	}
	x, y, err := s.basePoint(d.FillBytes(make([]byte, s.size)))
	if err != nil {
		return nil, err
	}
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: s.curve, X: x, Y: y},
		D:         d,
	}, nil
}

// basePoint returns the affine coordinates of d·G for a size-byte scalar.
func (s ecScheme) basePoint(d []byte) (*big.Int, *big.Int, error) {
	if s.nist == nil {
		x, y := s.curve.ScalarBaseMult(d)
		return x, y, nil
	}
	priv, err := s.nist.NewPrivateKey(d)
	if err != nil {
		return nil, nil, err
	}
	raw := priv.PublicKey().Bytes()
	return new(big.Int).SetBytes(raw[1 : 1+s.size]), new(big.Int).SetBytes(raw[1+s.size:]), nil
}

// onCurve reports whether (x, y) is a point of the curve other than infinity.
func (s ecScheme) onCurve(x, y *big.Int) bool {
	if s.nist == nil {
		return s.curve.IsOnCurve(x, y)
	}
	raw := make([]byte, 1+2*s.size)
	raw[0] = 0x04
	x.FillBytes(raw[1 : 1+s.size])
	y.FillBytes(raw[1+s.size:])
	_, err := s.nist.NewPublicKey(raw)
	return err == nil
}

func (s ecScheme) public(secret []byte) ([]byte, error) {
	priv, err := s.privateKey(secret)
	if err != nil {
		return nil, err
	}
	return elliptic.MarshalCompressed(s.curve, priv.X, priv.Y), nil
}

func (s ecScheme) point(raw []byte) (*ecdsa.PublicKey, error) {
	if len(raw) != s.size+1 {
		return nil, fmt.Errorf("expected %d-byte compressed point, got %d", s.size+1, len(raw))
	}
	x, y := elliptic.UnmarshalCompressed(s.curve, raw)
	if x == nil {
		return nil, fmt.Errorf("invalid compressed point for %s", s.name)
	}
	return &ecdsa.PublicKey{Curve: s.curve, X: x, Y: y}, nil
}

func (s ecScheme) parse(raw []byte) error {
	_, err := s.point(raw)
	return err
}

func (s ecScheme) jwk(pub []byte) (JWK, error) {
	p, err := s.point(pub)
	if err != nil {
		return JWK{}, err
	}
	return JWK{
		Kty: types.KeyTypeEC,
		Crv: string(s.name),
		X:   b64(p.X.FillBytes(make([]byte, s.size))),
		Y:   b64(p.Y.FillBytes(make([]byte, s.size))),
	}, nil
}

func (s ecScheme) fromJWK(j JWK) ([]byte, error) {
	x, y, err := coordinates(j, s.size)
	if err != nil {
		return nil, err
	}
	if !s.onCurve(x, y) {
		return nil, fmt.Errorf("point is not on %s", s.name)
	}
	return elliptic.MarshalCompressed(s.curve, x, y), nil
}

func (s ecScheme) sign(secret, digest []byte) ([]byte, error) {
	priv, err := s.privateKey(secret)
	if err != nil {
		return nil, err
	}
	r, ss, err := s.signFn(priv, digest)
	if err != nil {
		return nil, err
	}
	return encodeP1363(r, ss, s.size), nil
}

func (s ecScheme) verify(pub, digest, sig []byte) bool {
	p, err := s.point(pub)
	if err != nil {
		return false
	}
	r, ss, err := decodeP1363(sig, s.size)
	if err != nil {
		return false
	}
	return s.verFn(p, digest, r, ss)
}

// coordinates decodes the affine x and y members of an EC JWK.
func coordinates(j JWK, size int) (*big.Int, *big.Int, error) {
	xb, err := unb64("x", j.X)
	if err != nil {
		return nil, nil, err
	}
	yb, err := unb64("y", j.Y)
	if err != nil {
		return nil, nil, err
	}
	if len(xb) != size || len(yb) != size {
		return nil, nil, fmt.Errorf("expected %d-byte coordinates, got x=%d y=%d", size, len(xb), len(yb))
	}
	return new(big.Int).SetBytes(xb), new(big.Int).SetBytes(yb), nil
}

// encodeP1363 concatenates r and s, each left-padded to size bytes.
func encodeP1363(r, s *big.Int, size int) []byte {
	sig := make([]byte, size*2)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig
}

// decodeP1363 splits a fixed-length r‖s signature.
func decodeP1363(sig []byte, size int) (*big.Int, *big.Int, error) {
	if len(sig) != size*2 {
		return nil, nil, fmt.Errorf("expected %d-byte signature, got %d", size*2, len(sig))
	}
	r := new(big.Int).SetBytes(sig[:size])
	s := new(big.Int).SetBytes(sig[size:])
	return r, s, nil
}
