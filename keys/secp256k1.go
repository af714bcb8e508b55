// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/aumos-ai/didkey/types"
)

const secp256k1KeySize = 32

type secp256k1Scheme struct{}

func (secp256k1Scheme) secretSize() int { return secp256k1KeySize }

func (secp256k1Scheme) generate(rnd io.Reader) ([]byte, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(rnd)
	if err != nil {
		return nil, fmt.Errorf("generate scalar: %w", err)
	}
	return priv.Serialize(), nil
}

func (secp256k1Scheme) privateKey(secret []byte) (*btcec.PrivateKey, error) {
	if len(secret) > secp256k1KeySize {
		return nil, fmt.Errorf("expected at most %d scalar bytes, got %d", secp256k1KeySize, len(secret))
	}
	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(secret); overflow || d.IsZero() {
		return nil, fmt.Errorf("scalar out of range for secp256k1")
	}
	return secp256k1.NewPrivateKey(&d), nil
}

func (s secp256k1Scheme) public(secret []byte) ([]byte, error) {
	priv, err := s.privateKey(secret)
	if err != nil {
		return nil, err
	}
	return priv.PubKey().SerializeCompressed(), nil
}

func (secp256k1Scheme) point(raw []byte) (*btcec.PublicKey, error) {
	if len(raw) != btcec.PubKeyBytesLenCompressed {
		return nil, fmt.Errorf("expected %d-byte compressed point, got %d", btcec.PubKeyBytesLenCompressed, len(raw))
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid compressed point: %w", err)
	}
	return pub, nil
}

func (s secp256k1Scheme) parse(raw []byte) error {
	_, err := s.point(raw)
	return err
}

func (s secp256k1Scheme) jwk(raw []byte) (JWK, error) {
	pub, err := s.point(raw)
	if err != nil {
		return JWK{}, err
	}
	return JWK{
		Kty: types.KeyTypeEC,
		Crv: string(types.CurveSecp256k1),
		X:   b64(pub.X().FillBytes(make([]byte, secp256k1KeySize))),
		Y:   b64(pub.Y().FillBytes(make([]byte, secp256k1KeySize))),
	}, nil
}

func (secp256k1Scheme) fromJWK(j JWK) ([]byte, error) {
	x, y, err := coordinates(j, secp256k1KeySize)
	if err != nil {
		return nil, err
	}
	uncompressed := make([]byte, 0, secp256k1.PubKeyBytesLenUncompressed)
	uncompressed = append(uncompressed, 0x04)
	uncompressed = append(uncompressed, x.FillBytes(make([]byte, secp256k1KeySize))...)
	uncompressed = append(uncompressed, y.FillBytes(make([]byte, secp256k1KeySize))...)
	pub, err := btcec.ParsePubKey(uncompressed)
	if err != nil {
		return nil, fmt.Errorf("point is not on secp256k1: %w", err)
	}
	return pub.SerializeCompressed(), nil
}

func (s secp256k1Scheme) sign(secret, digest []byte) ([]byte, error) {
	priv, err := s.privateKey(secret)
	if err != nil {
		return nil, err
	}
	// Compact signatures are recovery byte followed by r‖s.
	return ecdsa.SignCompact(priv, digest, false)[1:], nil
}

func (s secp256k1Scheme) verify(raw, digest, sig []byte) bool {
	pub, err := s.point(raw)
	if err != nil || len(sig) != 2*secp256k1KeySize {
		return false
	}
	var r, ss secp256k1.ModNScalar
	if r.SetByteSlice(sig[:secp256k1KeySize]) || ss.SetByteSlice(sig[secp256k1KeySize:]) {
		return false
	}
	if r.IsZero() || ss.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &ss).Verify(digest, pub)
}
