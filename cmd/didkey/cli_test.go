// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumos-ai/didkey/identity"
)

func TestGenerateSignVerify(t *testing.T) {
	dir := t.TempDir()
	docPath := filepath.Join(dir, "identity.json")
	require.Equal(t, exitOK, run([]string{"didkey", "generate", "P-256", "--secure-hex", strings.Repeat("01", 32), "--out", docPath}))

	raw, err := os.ReadFile(docPath)
	require.NoError(t, err)
	var res identity.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	require.Len(t, res.Keys, 1)
	require.NotNil(t, res.Keys[0].PrivateKeyJwk)

	privPath := filepath.Join(dir, "private.json")
	pubPath := filepath.Join(dir, "public.json")
	writeTestJSON(t, privPath, res.Keys[0].PrivateKeyJwk)
	writeTestJSON(t, pubPath, res.Keys[0].PublicKeyJwk)

	payloadPath := filepath.Join(dir, "payload.txt")
	require.NoError(t, os.WriteFile(payloadPath, []byte("hello world."), 0o600))

	tokenPath := filepath.Join(dir, "token")
	require.Equal(t, exitOK, run([]string{"didkey", "sign", "--jwk", privPath, "--in", payloadPath, "--out", tokenPath}))
	tokenBytes, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	token := strings.TrimSpace(string(tokenBytes))

	assert.Equal(t, exitOK, run([]string{"didkey", "verify", "--jwk", pubPath, "--in", payloadPath, "--sig", token}))
	assert.Equal(t, exitOK, run([]string{"didkey", "verify", "--method", res.Keys[0].ID, "--in", payloadPath, "--sig", token}))

	require.NoError(t, os.WriteFile(payloadPath, []byte("hello world!"), 0o600))
	assert.Equal(t, exitInvalidSignature, run([]string{"didkey", "verify", "--jwk", pubPath, "--in", payloadPath, "--sig", token}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "verify", "--jwk", pubPath, "--in", payloadPath, "--sig", "not-a-token"}))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	gen, err := identity.Generate("Ed25519", identity.GenerateOptions{})
	require.NoError(t, err)

	outPath := filepath.Join(dir, "doc.json")
	require.Equal(t, exitOK, run([]string{"didkey", "resolve", gen.DIDDocument.ID, "--out", outPath}))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var res identity.Result
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, gen.DIDDocument, res.DIDDocument)

	assert.Equal(t, exitFailure, run([]string{"didkey", "resolve", "did:web:example.com"}))
}

func TestUsageErrors(t *testing.T) {
	assert.Equal(t, exitFailure, run([]string{"didkey"}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "rotate"}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "generate"}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "generate", "P-224"}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "sign", "--in", "x"}))
	assert.Equal(t, exitFailure, run([]string{"didkey", "verify", "--in", "x", "--sig", "a..b"}))
}

func writeTestJSON(t *testing.T, path string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))
}
