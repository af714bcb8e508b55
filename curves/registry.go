// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package curves is the static registry of did:key curve profiles. Every
// encoding, document and signature operation dispatches on a Profile looked up
// here, either by curve name or by the 2-byte type code that prefixes an
// encoded public key.
package curves

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/multiformats/go-multicodec"

	"github.com/aumos-ai/didkey/types"
)

// Curve is the closed set of supported key types.
type Curve uint8

const (
	Ed25519 Curve = iota
	X25519
	P256
	P384
	P521
	SM2
	Secp256k1
	Bls12381G1
	Bls12381G2
	// Bls12381G1G2 is the composite G1‖G2 encoding. It never signs and never
	// populates a relationship on its own.
	Bls12381G1G2

	numCurves
)

// Relationship sets shared by several profiles.
var (
	keyAgreementOnly = []types.Relationship{
		types.RelationshipVerificationMethod,
		types.RelationshipKeyAgreement,
	}
	allButAgreement = []types.Relationship{
		types.RelationshipVerificationMethod,
		types.RelationshipAssertionMethod,
		types.RelationshipAuthentication,
		types.RelationshipCapabilityInvocation,
		types.RelationshipCapabilityDelegation,
	}
	allRelationships = []types.Relationship{
		types.RelationshipVerificationMethod,
		types.RelationshipAssertionMethod,
		types.RelationshipAuthentication,
		types.RelationshipCapabilityInvocation,
		types.RelationshipCapabilityDelegation,
		types.RelationshipKeyAgreement,
	}
)

// Profile describes how keys on one curve are encoded, signed with, and placed
// in a DID document.
type Profile struct {
	Curve Curve
	Name  types.CurveName
	// Codec is the multicodec table entry; TypeCode is its unsigned-varint
	// encoding read as a big-endian uint16.
	Codec    multicodec.Code
	TypeCode uint16
	// Compressed reports whether public keys are encoded as compressed points
	// rather than in their native fixed-length form.
	Compressed    bool
	Algorithm     types.Algorithm
	Digest        types.Digest
	Relationships []types.Relationship
	Composite     bool
}

// CanSign reports whether the profile declares a JOSE signing algorithm.
func (p Profile) CanSign() bool {
	return p.Algorithm != ""
}

// Prefix returns the big-endian type code bytes that precede an encoded key.
func (p Profile) Prefix() []byte {
	return binary.BigEndian.AppendUint16(nil, p.TypeCode)
}

func (p Profile) String() string {
	return string(p.Name)
}

var profiles = [numCurves]Profile{
	Ed25519: {
		Name:          types.CurveEd25519,
		Codec:         multicodec.Ed25519Pub,
		Algorithm:     types.AlgorithmEdDSA,
		Relationships: allButAgreement,
	},
	X25519: {
		Name:          types.CurveX25519,
		Codec:         multicodec.X25519Pub,
		Relationships: keyAgreementOnly,
	},
	P256: {
		Name:          types.CurveP256,
		Codec:         multicodec.P256Pub,
		Compressed:    true,
		Algorithm:     types.AlgorithmES256,
		Digest:        types.DigestSHA256,
		Relationships: allRelationships,
	},
	P384: {
		Name:          types.CurveP384,
		Codec:         multicodec.P384Pub,
		Compressed:    true,
		Algorithm:     types.AlgorithmES384,
		Digest:        types.DigestSHA384,
		Relationships: allRelationships,
	},
	P521: {
		Name:          types.CurveP521,
		Codec:         multicodec.P521Pub,
		Compressed:    true,
		Algorithm:     types.AlgorithmES512,
		Digest:        types.DigestSHA512,
		Relationships: allRelationships,
	},
	SM2: {
		Name:          types.CurveSM2,
		Codec:         multicodec.Sm2Pub,
		Compressed:    true,
		Algorithm:     types.AlgorithmSM2SM3,
		Digest:        types.DigestSM3,
		Relationships: allRelationships,
	},
	Secp256k1: {
		Name:          types.CurveSecp256k1,
		Codec:         multicodec.Secp256k1Pub,
		Compressed:    true,
		Algorithm:     types.AlgorithmES256K,
		Digest:        types.DigestSHA256,
		Relationships: allRelationships,
	},
	Bls12381G1: {
		Name:          types.CurveBls12381G1,
		Codec:         multicodec.Bls12_381G1Pub,
		Relationships: allButAgreement,
	},
	Bls12381G2: {
		Name:          types.CurveBls12381G2,
		Codec:         multicodec.Bls12_381G2Pub,
		Relationships: allButAgreement,
	},
	Bls12381G1G2: {
		Name:      types.CurveBls12381G1G2,
		Codec:     multicodec.Bls12_381G1g2Pub,
		Composite: true,
	},
}

var (
	byName = make(map[types.CurveName]Curve, numCurves)
	byCode = make(map[uint16]Curve, numCurves)
)

func init() {
	for i := range profiles {
		p := &profiles[i]
		p.Curve = Curve(i)

		prefix := binary.AppendUvarint(nil, uint64(p.Codec))
		if len(prefix) != 2 {
			panic(fmt.Sprintf("curves: codec %s of %s is not a 2-byte varint", p.Codec, p.Name))
		}
		p.TypeCode = binary.BigEndian.Uint16(prefix)

		if _, dup := byCode[p.TypeCode]; dup {
			panic(fmt.Sprintf("curves: duplicate type code 0x%04x", p.TypeCode))
		}
		byName[p.Name] = p.Curve
		byCode[p.TypeCode] = p.Curve
	}
}

// ProfileOf returns the profile of a statically known curve. It panics if c is
// not a registered curve; check Valid first for curves from untrusted input.
func ProfileOf(c Curve) Profile {
	if !c.Valid() {
		panic(fmt.Sprintf("curves: curve %d out of range", c))
	}
	return profiles[c].clone()
}

// clone copies the profile so callers cannot alias the table.
func (p Profile) clone() Profile {
	p.Relationships = slices.Clone(p.Relationships)
	return p
}

// Valid reports whether c is a registered curve.
func (c Curve) Valid() bool {
	return c < numCurves
}

// LookupByName returns the profile registered under name.
func LookupByName(name string) (Profile, error) {
	c, ok := byName[types.CurveName(name)]
	if !ok {
		return Profile{}, &types.ErrUnknownCurve{Curve: name}
	}
	return profiles[c].clone(), nil
}

// LookupByCode returns the profile whose type code prefixes an encoded key.
func LookupByCode(code uint16) (Profile, error) {
	c, ok := byCode[code]
	if !ok {
		return Profile{}, &types.ErrInvalidFormat{
			Input:  fmt.Sprintf("0x%04x", code),
			Reason: "unknown key type code",
		}
	}
	return profiles[c].clone(), nil
}

// All returns every profile in table order.
func All() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.clone()
	}
	return out
}

// Name returns the canonical name of c.
func (c Curve) Name() types.CurveName {
	return ProfileOf(c).Name
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", uint8(c))
	}
	return string(c.Name())
}
