// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumos-ai/didkey/jws"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

func TestResolverResolve(t *testing.T) {
	gen, err := Generate("secp256k1", GenerateOptions{})
	require.NoError(t, err)

	r := NewDIDResolver(ResolverOptions{})
	doc, err := r.Resolve(context.Background(), gen.DIDDocument.ID)
	require.NoError(t, err)
	assert.Equal(t, gen.DIDDocument, doc)

	vm, err := r.ResolveMethod(context.Background(), gen.Keys[0].ID)
	require.NoError(t, err)
	assert.Equal(t, gen.Keys[0].PublicKeyJwk, vm.PublicKeyJwk)

	_, err = r.ResolveMethod(context.Background(), gen.DIDDocument.ID+"#missing")
	var notFound *types.ErrMethodNotFound
	require.True(t, errors.As(err, &notFound))
}

func TestResolverMethods(t *testing.T) {
	r := NewDIDResolver(ResolverOptions{})
	_, err := r.Resolve(context.Background(), "did:web:example.com")
	var unsupported *types.ErrUnsupportedDIDMethod
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "web", unsupported.Method)

	_, err = r.Resolve(context.Background(), "did:example:123")
	require.True(t, errors.As(err, &unsupported))

	restricted := NewDIDResolver(ResolverOptions{Methods: []types.DIDMethod{types.DIDMethodWeb}})
	gen, err := Generate("Ed25519", GenerateOptions{})
	require.NoError(t, err)
	_, err = restricted.Resolve(context.Background(), gen.DIDDocument.ID)
	require.True(t, errors.As(err, &unsupported))
}

func TestResolverCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDIDResolver(ResolverOptions{}).Resolve(ctx, "did:key:z6Mk")
	require.ErrorIs(t, err, context.Canceled)
}

func TestVerifyDetached(t *testing.T) {
	gen, err := Generate("P-256", GenerateOptions{})
	require.NoError(t, err)
	signer, err := keys.FromJWK(*gen.Keys[0].PrivateKeyJwk)
	require.NoError(t, err)

	payload := []byte("hello world.")
	token, err := jws.Sign(payload, signer.(keys.PrivateKey))
	require.NoError(t, err)

	v := NewVerifier(NewDIDResolver(ResolverOptions{}))
	res, err := v.VerifyDetached(context.Background(), payload, token, gen.Keys[0].ID)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, gen.DIDDocument.ID, res.DID)
	assert.Equal(t, gen.Keys[0].ID, res.MethodID)

	res, err = v.VerifyDetached(context.Background(), []byte("tampered"), token, gen.Keys[0].ID)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Reason)

	_, err = v.VerifyDetached(context.Background(), payload, token, gen.DIDDocument.ID)
	var notFound *types.ErrMethodNotFound
	require.True(t, errors.As(err, &notFound))
}

func TestVerifyDetachedKeyAgreementMethod(t *testing.T) {
	gen, err := Generate("Ed25519", GenerateOptions{})
	require.NoError(t, err)
	signer, err := keys.FromJWK(*gen.Keys[0].PrivateKeyJwk)
	require.NoError(t, err)
	token, err := jws.Sign([]byte("x"), signer.(keys.PrivateKey))
	require.NoError(t, err)

	v := NewVerifier(NewDIDResolver(ResolverOptions{}))
	_, err = v.VerifyDetached(context.Background(), []byte("x"), token, gen.Keys[1].ID)
	var unsupported *types.ErrUnsupportedCurve
	require.True(t, errors.As(err, &unsupported))
}
