// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package identity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/keys"
	"github.com/aumos-ai/didkey/types"
)

// DocumentContext is the fixed @context of every generated document.
var DocumentContext = []string{
	"https://www.w3.org/ns/did/v1",
	"https://w3id.org/security/suites/jws-2020/v1",
}

// DIDDocument represents a W3C DID Document. Relationships a document's keys
// do not use are omitted.
type DIDDocument struct {
	Context              []string    `json:"@context"`
	ID                   string      `json:"id"`
	VerificationMethod   []MethodRef `json:"verificationMethod,omitempty"`
	AssertionMethod      []MethodRef `json:"assertionMethod,omitempty"`
	Authentication       []MethodRef `json:"authentication,omitempty"`
	CapabilityInvocation []MethodRef `json:"capabilityInvocation,omitempty"`
	CapabilityDelegation []MethodRef `json:"capabilityDelegation,omitempty"`
	KeyAgreement         []MethodRef `json:"keyAgreement,omitempty"`
}

// VerificationMethod is a JsonWebKey2020 verification method.
type VerificationMethod struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Controller    string    `json:"controller"`
	PublicKeyJwk  keys.JWK  `json:"publicKeyJwk"`
	PrivateKeyJwk *keys.JWK `json:"privateKeyJwk,omitempty"`
}

// MethodRef is a relationship entry: either an embedded verification method
// or the id of one embedded elsewhere in the document.
type MethodRef struct {
	Method *VerificationMethod
	ID     string
}

// Embedded reports whether the entry carries the full method.
func (r MethodRef) Embedded() bool {
	return r.Method != nil
}

// RefID returns the id the entry refers to.
func (r MethodRef) RefID() string {
	if r.Method != nil {
		return r.Method.ID
	}
	return r.ID
}

func (r MethodRef) MarshalJSON() ([]byte, error) {
	if r.Method != nil {
		return json.Marshal(r.Method)
	}
	return json.Marshal(r.ID)
}

func (r *MethodRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		r.Method = nil
		return json.Unmarshal(data, &r.ID)
	}
	var vm VerificationMethod
	if err := json.Unmarshal(data, &vm); err != nil {
		return fmt.Errorf("document: decode verification method: %w", err)
	}
	r.Method, r.ID = &vm, ""
	return nil
}

// Result is a DID document together with the full verification methods of the
// keys it was built from. Methods for private keys carry privateKeyJwk in Keys
// only; the document itself never holds private material.
type Result struct {
	DIDDocument *DIDDocument         `json:"didDocument"`
	Keys        []VerificationMethod `json:"keys"`
}

// Relationship returns the entries of relationship r.
func (d *DIDDocument) Relationship(r types.Relationship) []MethodRef {
	if p := d.relationship(r); p != nil {
		return *p
	}
	return nil
}

func (d *DIDDocument) relationship(r types.Relationship) *[]MethodRef {
	switch r {
	case types.RelationshipVerificationMethod:
		return &d.VerificationMethod
	case types.RelationshipAssertionMethod:
		return &d.AssertionMethod
	case types.RelationshipAuthentication:
		return &d.Authentication
	case types.RelationshipCapabilityInvocation:
		return &d.CapabilityInvocation
	case types.RelationshipCapabilityDelegation:
		return &d.CapabilityDelegation
	case types.RelationshipKeyAgreement:
		return &d.KeyAgreement
	}
	return nil
}

// FindMethod returns the embedded verification method with the given id.
func (d *DIDDocument) FindMethod(id string) (*VerificationMethod, bool) {
	for _, r := range []types.Relationship{
		types.RelationshipVerificationMethod,
		types.RelationshipAssertionMethod,
		types.RelationshipAuthentication,
		types.RelationshipCapabilityInvocation,
		types.RelationshipCapabilityDelegation,
		types.RelationshipKeyAgreement,
	} {
		for _, ref := range d.Relationship(r) {
			if ref.Embedded() && ref.Method.ID == id {
				return ref.Method, true
			}
		}
	}
	return nil, false
}

// BuildDIDDocument builds the document with the given id describing ks, in
// order. Each key is embedded in the first relationship its curve profile
// lists and referenced by id in the rest.
func BuildDIDDocument(documentID string, ks []keys.Key) (*Result, error) {
	doc := &DIDDocument{
		Context: append([]string(nil), DocumentContext...),
		ID:      documentID,
	}
	methods := make([]VerificationMethod, 0, len(ks))

	for _, k := range ks {
		vm, err := newVerificationMethod(documentID, k)
		if err != nil {
			return nil, err
		}

		public := vm
		public.PrivateKeyJwk = nil
		methods = append(methods, vm)

		for i, rel := range curves.ProfileOf(k.Public().Curve).Relationships {
			entries := doc.relationship(rel)
			if i == 0 {
				embedded := public
				*entries = append(*entries, MethodRef{Method: &embedded})
				continue
			}
			*entries = append(*entries, MethodRef{ID: public.ID})
		}
	}

	return &Result{DIDDocument: doc, Keys: methods}, nil
}

func newVerificationMethod(controller string, k keys.Key) (VerificationMethod, error) {
	fp, err := Fingerprint(k)
	if err != nil {
		return VerificationMethod{}, err
	}
	pubJWK, err := k.Public().JWK()
	if err != nil {
		return VerificationMethod{}, fmt.Errorf("document: export public key: %w", err)
	}

	vm := VerificationMethod{
		ID:           controller + "#" + fp,
		Type:         string(types.VerificationMethodJSONWebKey2020),
		Controller:   controller,
		PublicKeyJwk: pubJWK,
	}
	if priv, ok := k.(keys.PrivateKey); ok {
		privJWK, err := priv.JWK()
		if err != nil {
			return VerificationMethod{}, fmt.Errorf("document: export private key: %w", err)
		}
		vm.PrivateKeyJwk = &privJWK
	}
	return vm, nil
}
