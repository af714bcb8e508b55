// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package jws produces and checks detached JSON Web Signatures with an
// unencoded payload (RFC 7797). Tokens have the form
//
//	base64url(header) + ".." + base64url(signature)
//
// where the header is always {"alg":<alg>,"b64":false,"crit":["b64"]} and the
// signing input is the encoded header, a ".", and the raw payload bytes. Curves
// whose profile names a digest sign the digest of the signing input.
package jws

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

type header struct {
	Algorithm types.Algorithm `json:"alg"`
	B64       *bool           `json:"b64"`
	Crit      []string        `json:"crit"`
}

// headerMembers are the only members a detached header may carry.
var headerMembers = []string{"alg", "b64", "crit"}

// signingProfile returns the profile of k's curve if it declares an algorithm.
func signingProfile(k keys.Key, op string) (curves.Profile, error) {
	c := k.Public().Curve
	if !c.Valid() {
		return curves.Profile{}, &types.ErrUnknownCurve{Curve: c.String()}
	}
	p := curves.ProfileOf(c)
	if !p.CanSign() {
		return curves.Profile{}, &types.ErrUnsupportedCurve{Curve: p.String(), Operation: op}
	}
	return p, nil
}

// Sign returns a detached JWS over payload made with k.
func Sign(payload []byte, k keys.PrivateKey) (string, error) {
	p, err := signingProfile(k, "sign")
	if err != nil {
		return "", err
	}

	b64 := false
	headerJSON, err := json.Marshal(header{Algorithm: p.Algorithm, B64: &b64, Crit: []string{"b64"}})
	if err != nil {
		return "", fmt.Errorf("jws: marshal header: %w", err)
	}
	encodedHeader := base64URLEncode(headerJSON)

	input, err := signingInput(p, encodedHeader, payload)
	if err != nil {
		return "", err
	}
	sig, err := keys.Sign(k, input)
	if err != nil {
		return "", fmt.Errorf("jws: sign: %w", err)
	}
	return encodedHeader + ".." + base64URLEncode(sig), nil
}

// SignJWK is Sign with the key given as a private JWK.
func SignJWK(payload []byte, j keys.JWK) (string, error) {
	k, err := keys.FromJWK(j)
	if err != nil {
		return "", fmt.Errorf("jws: import key: %w", err)
	}
	priv, ok := k.(keys.PrivateKey)
	if !ok {
		return "", &types.ErrInvalidFormat{Input: j.Crv, Reason: "signing key has no private component"}
	}
	return Sign(payload, priv)
}

// Verify reports whether token is a valid detached JWS over payload by k.
// Structural problems with the token are errors; a well-formed token whose
// signature does not check out is (false, nil).
func Verify(payload []byte, token string, k keys.Key) (bool, error) {
	p, err := signingProfile(k, "verify")
	if err != nil {
		return false, err
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[1] != "" {
		return false, &types.ErrInvalidSignatureFormat{Reason: "expected header..signature"}
	}

	hdr, err := decodeHeader(parts[0])
	if err != nil {
		return false, err
	}
	if hdr.Algorithm != p.Algorithm {
		return false, &types.ErrAlgorithmMismatch{Expected: string(p.Algorithm), Got: string(hdr.Algorithm)}
	}
	if hdr.B64 == nil || *hdr.B64 || len(hdr.Crit) != 1 || hdr.Crit[0] != "b64" {
		return false, &types.ErrInvalidSignatureFormat{Reason: `header must set "b64":false and "crit":["b64"]`}
	}

	sig, err := base64URLDecode(parts[2])
	if err != nil {
		return false, &types.ErrInvalidSignatureFormat{Reason: fmt.Sprintf("decode signature: %v", err)}
	}

	input, err := signingInput(p, parts[0], payload)
	if err != nil {
		return false, err
	}
	ok, err := keys.Verify(k.Public(), input, sig)
	if err != nil {
		return false, fmt.Errorf("jws: verify: %w", err)
	}
	return ok, nil
}

// VerifyJWK is Verify with the key given as a JWK. A private JWK verifies with
// its public part.
func VerifyJWK(payload []byte, token string, j keys.JWK) (bool, error) {
	k, err := keys.FromJWK(j)
	if err != nil {
		return false, fmt.Errorf("jws: import key: %w", err)
	}
	return Verify(payload, token, k)
}

func decodeHeader(encoded string) (header, error) {
	raw, err := base64URLDecode(encoded)
	if err != nil {
		return header{}, &types.ErrInvalidSignatureFormat{Reason: fmt.Sprintf("decode header: %v", err)}
	}
	// Members are matched exactly; encoding/json would otherwise accept
	// "ALG" for "alg".
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return header{}, &types.ErrInvalidSignatureFormat{Reason: fmt.Sprintf("parse header: %v", err)}
	}
	if len(members) != len(headerMembers) {
		return header{}, &types.ErrInvalidSignatureFormat{Reason: "header must have exactly alg, b64 and crit"}
	}

	var hdr header
	for _, name := range headerMembers {
		value, ok := members[name]
		if !ok {
			return header{}, &types.ErrInvalidSignatureFormat{Reason: fmt.Sprintf("header is missing %q", name)}
		}
		var err error
		switch name {
		case "alg":
			err = json.Unmarshal(value, &hdr.Algorithm)
		case "b64":
			err = json.Unmarshal(value, &hdr.B64)
		case "crit":
			err = json.Unmarshal(value, &hdr.Crit)
		}
		if err != nil {
			return header{}, &types.ErrInvalidSignatureFormat{Reason: fmt.Sprintf("parse header %q: %v", name, err)}
		}
	}
	return hdr, nil
}

// signingInput returns encodedHeader "." payload, digested when the profile
// requires it.
func signingInput(p curves.Profile, encodedHeader string, payload []byte) ([]byte, error) {
	input := make([]byte, 0, len(encodedHeader)+1+len(payload))
	input = append(input, encodedHeader...)
	input = append(input, '.')
	input = append(input, payload...)
	if p.Digest == "" {
		return input, nil
	}
	digest, err := keys.Digest(p.Digest, input)
	if err != nil {
		return nil, fmt.Errorf("jws: digest signing input: %w", err)
	}
	return digest, nil
}

// base64URLEncode encodes bytes as unpadded base64url.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes an unpadded base64url string.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
