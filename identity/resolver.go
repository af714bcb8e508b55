// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"context"
	"fmt"

	"github.com/aumos-ai/didkey/types"
)

// ResolverOptions configures a DIDResolver.
type ResolverOptions struct {
	// Methods restricts the DID methods the resolver accepts. Defaults to every
	// method the package implements, which is currently only did:key.
	Methods []types.DIDMethod
}

type resolveFunc func(did string) (*Result, error)

// DIDResolver resolves DID Documents by method. did:key resolution is entirely
// local (no network call).
type DIDResolver struct {
	methods map[types.DIDMethod]resolveFunc
}

var builtinMethods = map[types.DIDMethod]resolveFunc{
	types.DIDMethodKey: Resolve,
}

// NewDIDResolver constructs a DIDResolver with the provided options. Methods
// without an implementation are rejected at resolution time.
func NewDIDResolver(opts ResolverOptions) *DIDResolver {
	methods := make(map[types.DIDMethod]resolveFunc, len(builtinMethods))
	if len(opts.Methods) == 0 {
		for m, fn := range builtinMethods {
			methods[m] = fn
		}
	}
	for _, m := range opts.Methods {
		if fn, ok := builtinMethods[m]; ok {
			methods[m] = fn
		}
	}
	return &DIDResolver{methods: methods}
}

// Resolve returns the DID Document for the given DID or DID URL.
func (r *DIDResolver) Resolve(ctx context.Context, did string) (*DIDDocument, error) {
	res, err := r.resolve(ctx, did)
	if err != nil {
		return nil, err
	}
	return res.DIDDocument, nil
}

// ResolveMethod dereferences a DID URL with a fragment to the verification
// method it names.
func (r *DIDResolver) ResolveMethod(ctx context.Context, didURL string) (*VerificationMethod, error) {
	doc, err := r.Resolve(ctx, didURL)
	if err != nil {
		return nil, err
	}
	vm, ok := doc.FindMethod(didURL)
	if !ok {
		return nil, &types.ErrMethodNotFound{ID: didURL}
	}
	return vm, nil
}

func (r *DIDResolver) resolve(ctx context.Context, did string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolver: %w", err)
	}

	method, err := ParseDIDMethod(did)
	if err != nil {
		return nil, fmt.Errorf("resolver: parse DID method: %w", err)
	}

	fn, ok := r.methods[method]
	if !ok {
		return nil, &types.ErrUnsupportedDIDMethod{Method: string(method)}
	}
	res, err := fn(did)
	if err != nil {
		return nil, fmt.Errorf("resolver: resolve %s: %w", method, err)
	}
	return res, nil
}
