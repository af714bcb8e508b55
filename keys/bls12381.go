// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/ecc/bls12381"

	"github.com/aumos-ai/didkey/types"
)

// blsGroup abstracts over the two BLS12-381 source groups. Points are always
// handled in compressed form.
type blsGroup struct {
	name types.CurveName
	size int
	// mulBase returns k·G compressed.
	mulBase func(k *bls12381.Scalar) []byte
	check   func(raw []byte) error
}

var (
	g1 = blsGroup{
		name: types.CurveBls12381G1,
		size: bls12381.G1SizeCompressed,
		mulBase: func(k *bls12381.Scalar) []byte {
			var p bls12381.G1
			p.ScalarMult(k, bls12381.G1Generator())
			return p.BytesCompressed()
		},
		check: func(raw []byte) error {
			var p bls12381.G1
			if err := p.SetBytes(raw); err != nil {
				return err
			}
			if p.IsIdentity() || !p.IsOnG1() {
				return errors.New("point is not a non-identity element of G1")
			}
			return nil
		},
	}
	g2 = blsGroup{
		name: types.CurveBls12381G2,
		size: bls12381.G2SizeCompressed,
		mulBase: func(k *bls12381.Scalar) []byte {
			var p bls12381.G2
			p.ScalarMult(k, bls12381.G2Generator())
			return p.BytesCompressed()
		},
		check: func(raw []byte) error {
			var p bls12381.G2
			if err := p.SetBytes(raw); err != nil {
				return err
			}
			if p.IsIdentity() || !p.IsOnG2() {
				return errors.New("point is not a non-identity element of G2")
			}
			return nil
		},
	}
)

// blsScheme carries BLS12-381 keys for encoding only; the profiles declare no
// signing algorithm.
type blsScheme struct {
	group blsGroup
}

func (blsScheme) secretSize() int { return bls12381.ScalarSize }

func (blsScheme) generate(rnd io.Reader) ([]byte, error) {
	var k bls12381.Scalar
	for k.IsZero() == 1 {
		if err := k.Random(rnd); err != nil {
			return nil, fmt.Errorf("generate scalar: %w", err)
		}
	}
	return k.MarshalBinary()
}

func blsScalar(secret []byte) (*bls12381.Scalar, error) {
	if len(secret) > bls12381.ScalarSize {
		return nil, fmt.Errorf("expected at most %d scalar bytes, got %d", bls12381.ScalarSize, len(secret))
	}
	k := new(bls12381.Scalar)
	if err := k.UnmarshalBinary(leftPad(secret, bls12381.ScalarSize)); err != nil {
		return nil, fmt.Errorf("scalar out of range: %w", err)
	}
	if k.IsZero() == 1 {
		return nil, errors.New("scalar is zero")
	}
	return k, nil
}

func (s blsScheme) public(secret []byte) ([]byte, error) {
	k, err := blsScalar(secret)
	if err != nil {
		return nil, err
	}
	return s.group.mulBase(k), nil
}

func (s blsScheme) parse(raw []byte) error {
	if len(raw) != s.group.size {
		return fmt.Errorf("expected %d-byte compressed %s point, got %d", s.group.size, s.group.name, len(raw))
	}
	if err := s.group.check(raw); err != nil {
		return fmt.Errorf("invalid %s point: %w", s.group.name, err)
	}
	return nil
}

func (s blsScheme) jwk(pub []byte) (JWK, error) {
	return JWK{Kty: types.KeyTypeEC, Crv: string(s.group.name), X: b64(pub)}, nil
}

func (s blsScheme) fromJWK(j JWK) ([]byte, error) {
	x, err := unb64("x", j.X)
	if err != nil {
		return nil, err
	}
	if err := s.parse(x); err != nil {
		return nil, err
	}
	return x, nil
}
