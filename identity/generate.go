// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"fmt"
	"io"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Secure, when set, is the raw private key (Ed25519 seed or curve scalar)
	// to derive the identity from instead of drawing a fresh one.
	Secure []byte
	// Rand is the entropy source for fresh keys. Defaults to crypto/rand.
	Rand io.Reader
}

// Generate creates a new did:key identity on the named curve. The returned
// key list holds the private keys; the document holds only public keys.
//
// Ed25519 identities carry their derived X25519 key-agreement key. The
// "bls12381" identity pairs a G1 key with a G2 key sharing its scalar and is
// identified by the composite fingerprint of both.
func Generate(curve string, opts GenerateOptions) (*Result, error) {
	p, err := curves.LookupByName(curve)
	if err != nil {
		return nil, err
	}

	if p.Composite {
		return generateComposite(opts)
	}

	primary, err := keys.Generate(p.Curve, opts.Secure, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("identity: generate %s key: %w", p.Name, err)
	}
	ks, err := keys.Expand(primary)
	if err != nil {
		return nil, fmt.Errorf("identity: derive keys: %w", err)
	}
	did, err := EncodeDID(primary)
	if err != nil {
		return nil, err
	}
	return BuildDIDDocument(did, ks)
}

func generateComposite(opts GenerateOptions) (*Result, error) {
	g1Key, err := keys.Generate(curves.Bls12381G1, opts.Secure, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("identity: generate G1 key: %w", err)
	}
	g2Key, err := keys.PairG2(g1Key)
	if err != nil {
		return nil, fmt.Errorf("identity: pair G2 key: %w", err)
	}
	fp, err := CompositeFingerprint(g1Key, g2Key)
	if err != nil {
		return nil, err
	}
	return BuildDIDDocument(keyDIDPrefix+fp, []keys.Key{g1Key, g2Key})
}

// Resolve builds the DID document a did:key identifier or DID URL denotes.
// The fragment, if any, does not affect the result. Only public keys are
// returned.
func Resolve(id string) (*Result, error) {
	ks, err := PublicKeys(id)
	if err != nil {
		return nil, err
	}
	return BuildDIDDocument(StripFragment(id), ks)
}

// PublicKeys decodes the public keys a did:key identifier denotes, including
// keys derived from the encoded one.
func PublicKeys(id string) ([]keys.Key, error) {
	p, raw, err := DecodeDID(id)
	if err != nil {
		return nil, err
	}

	if p.Composite {
		g1Key, g2Key, err := keys.SplitComposite(raw)
		if err != nil {
			return nil, fmt.Errorf("identity: decode %s: %w", p.Name, err)
		}
		return []keys.Key{g1Key, g2Key}, nil
	}

	pub, err := keys.NewPublicKey(p.Curve, raw)
	if err != nil {
		return nil, fmt.Errorf("identity: decode %s key: %w", p.Name, err)
	}
	ks, err := keys.Expand(pub)
	if err != nil {
		return nil, fmt.Errorf("identity: derive keys: %w", err)
	}
	return ks, nil
}
