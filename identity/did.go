// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package identity encodes keys as did:key identifiers, builds the DID
// documents they resolve to, and verifies detached signatures made by the
// keys those documents describe.
package identity

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/multiformats/go-multibase"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

const keyDIDPrefix = "did:key:"

// Fingerprint returns the multibase base58btc encoding of the key's type code
// followed by its public key bytes. The result always starts with 'z'.
func Fingerprint(k keys.Key) (string, error) {
	pub := k.Public()
	if !pub.Curve.Valid() {
		return "", &types.ErrUnknownCurve{Curve: pub.Curve.String()}
	}
	p := curves.ProfileOf(pub.Curve)
	return encodeFingerprint(append(p.Prefix(), pub.Bytes...))
}

// CompositeFingerprint returns the bls12381 fingerprint of a G1 and G2 key
// pair: the 0xee01 type code followed by the G1 point and then the G2 point.
func CompositeFingerprint(g1, g2 keys.Key) (string, error) {
	a, b := g1.Public(), g2.Public()
	if a.Curve != curves.Bls12381G1 || b.Curve != curves.Bls12381G2 {
		return "", &types.ErrUnsupportedCurve{
			Curve:     fmt.Sprintf("%s+%s", a.Curve, b.Curve),
			Operation: "composite fingerprint",
		}
	}
	raw := curves.ProfileOf(curves.Bls12381G1G2).Prefix()
	raw = append(raw, a.Bytes...)
	raw = append(raw, b.Bytes...)
	return encodeFingerprint(raw)
}

func encodeFingerprint(raw []byte) (string, error) {
	encoded, err := multibase.Encode(multibase.Base58BTC, raw)
	if err != nil {
		return "", fmt.Errorf("did: multibase encode: %w", err)
	}
	return encoded, nil
}

// EncodeDID returns the did:key identifier of k.
func EncodeDID(k keys.Key) (string, error) {
	fp, err := Fingerprint(k)
	if err != nil {
		return "", err
	}
	return keyDIDPrefix + fp, nil
}

// DecodeDID splits a did:key identifier or DID URL into the profile named by
// its type code and the key bytes that follow it. Any fragment is ignored. The
// key bytes are returned unvalidated.
func DecodeDID(id string) (curves.Profile, []byte, error) {
	did := StripFragment(id)
	if !strings.HasPrefix(did, keyDIDPrefix) {
		return curves.Profile{}, nil, &types.ErrInvalidFormat{Input: id, Reason: "missing did:key: prefix"}
	}

	enc, decoded, err := multibase.Decode(strings.TrimPrefix(did, keyDIDPrefix))
	if err != nil {
		return curves.Profile{}, nil, &types.ErrInvalidFormat{Input: id, Reason: fmt.Sprintf("multibase decode: %v", err)}
	}
	if enc != multibase.Base58BTC {
		return curves.Profile{}, nil, &types.ErrInvalidFormat{Input: id, Reason: "fingerprint is not base58btc"}
	}
	if len(decoded) < 2 {
		return curves.Profile{}, nil, &types.ErrInvalidFormat{Input: id, Reason: "decoded bytes too short"}
	}

	p, err := curves.LookupByCode(binary.BigEndian.Uint16(decoded))
	if err != nil {
		return curves.Profile{}, nil, &types.ErrInvalidFormat{Input: id, Reason: "unknown key type code"}
	}
	return p, decoded[2:], nil
}

// StripFragment returns id without any "#fragment" suffix.
func StripFragment(id string) string {
	did, _, _ := strings.Cut(id, "#")
	return did
}

// ParseDIDMethod extracts the method string from a DID (e.g. "key" from "did:key:...").
func ParseDIDMethod(did string) (types.DIDMethod, error) {
	parts := strings.SplitN(did, ":", 3)
	if len(parts) < 3 || parts[0] != "did" {
		return "", &types.ErrInvalidDID{DID: did, Reason: "must start with 'did:'"}
	}
	switch parts[1] {
	case "key":
		return types.DIDMethodKey, nil
	case "web":
		return types.DIDMethodWeb, nil
	default:
		return "", &types.ErrUnsupportedDIDMethod{Method: parts[1]}
	}
}
