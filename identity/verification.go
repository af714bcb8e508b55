// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"context"
	"fmt"

	"github.com/aumos-ai/didkey/jws"
	"github.com/aumos-ai/didkey/keys"
)

// VerificationResult is returned by Verifier.VerifyDetached.
type VerificationResult struct {
	// Valid is true when the signature checks out against the method's key.
	Valid bool
	// DID is the controller of the verification method.
	DID string
	// MethodID is the resolved verification method id.
	MethodID string
	// Reason is populated when Valid is false.
	Reason string
}

// Verifier resolves verification methods by DID URL and checks detached JWS
// tokens against them.
type Verifier struct {
	resolver *DIDResolver
}

// NewVerifier constructs a Verifier backed by the given DIDResolver.
func NewVerifier(resolver *DIDResolver) *Verifier {
	return &Verifier{resolver: resolver}
}

// VerifyDetached resolves methodID, a DID URL naming a verification method,
// and verifies token over payload with that method's public key. Failures to
// resolve or malformed tokens are errors; a signature that does not verify is
// reported through the result.
func (v *Verifier) VerifyDetached(ctx context.Context, payload []byte, token, methodID string) (*VerificationResult, error) {
	vm, err := v.resolver.ResolveMethod(ctx, methodID)
	if err != nil {
		return nil, fmt.Errorf("verification: resolve %s: %w", methodID, err)
	}

	pub, err := keys.FromJWK(vm.PublicKeyJwk)
	if err != nil {
		return nil, fmt.Errorf("verification: import key %s: %w", vm.ID, err)
	}

	ok, err := jws.Verify(payload, token, pub)
	if err != nil {
		return nil, fmt.Errorf("verification: %w", err)
	}

	result := &VerificationResult{
		Valid:    ok,
		DID:      vm.Controller,
		MethodID: vm.ID,
	}
	if !ok {
		result.Reason = fmt.Sprintf("%s signature is invalid", pub.Profile().Algorithm)
	}
	return result, nil
}
