// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package types defines shared value types used across the did:key packages.
package types

// DIDMethod enumerates Decentralized Identifier methods.
type DIDMethod string

const (
	DIDMethodKey DIDMethod = "key"
	DIDMethodWeb DIDMethod = "web"
)

// CurveName is the canonical registry key of a curve profile. It doubles as
// the JWK "crv" value.
type CurveName string

const (
	CurveEd25519      CurveName = "Ed25519"
	CurveX25519       CurveName = "X25519"
	CurveP256         CurveName = "P-256"
	CurveP384         CurveName = "P-384"
	CurveP521         CurveName = "P-521"
	CurveSM2          CurveName = "SM2"
	CurveSecp256k1    CurveName = "secp256k1"
	CurveBls12381G1   CurveName = "Bls12381G1"
	CurveBls12381G2   CurveName = "Bls12381G2"
	CurveBls12381G1G2 CurveName = "bls12381"
)

// Algorithm is a JOSE "alg" label.
type Algorithm string

const (
	AlgorithmEdDSA  Algorithm = "EdDSA"
	AlgorithmES256  Algorithm = "ES256"
	AlgorithmES384  Algorithm = "ES384"
	AlgorithmES512  Algorithm = "ES512"
	AlgorithmES256K Algorithm = "ES256K"
	AlgorithmSM2SM3 Algorithm = "SM2SM3"
)

// Digest names the message digest applied to a signing input before signing.
type Digest string

const (
	DigestSHA256 Digest = "SHA256"
	DigestSHA384 Digest = "SHA384"
	DigestSHA512 Digest = "SHA512"
	DigestSM3    Digest = "SM3"
)

// Relationship is a DID document verification relationship.
type Relationship string

const (
	RelationshipVerificationMethod   Relationship = "verificationMethod"
	RelationshipAssertionMethod      Relationship = "assertionMethod"
	RelationshipAuthentication       Relationship = "authentication"
	RelationshipCapabilityInvocation Relationship = "capabilityInvocation"
	RelationshipCapabilityDelegation Relationship = "capabilityDelegation"
	RelationshipKeyAgreement         Relationship = "keyAgreement"
)

// VerificationMethodType identifies the type of a DID verification method.
type VerificationMethodType string

const (
	VerificationMethodJSONWebKey2020 VerificationMethodType = "JsonWebKey2020"
)

// JWK key types.
const (
	KeyTypeOKP = "OKP"
	KeyTypeEC  = "EC"
)
