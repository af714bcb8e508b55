// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/emmansun/gmsm/sm3"

	"github.com/aumos-ai/didkey/types"
)

// Digest hashes data with the named digest.
func Digest(name types.Digest, data []byte) ([]byte, error) {
	switch name {
	case types.DigestSHA256:
		sum := sha256.Sum256(data)
		return sum[:], nil
	case types.DigestSHA384:
		sum := sha512.Sum384(data)
		return sum[:], nil
	case types.DigestSHA512:
		sum := sha512.Sum512(data)
		return sum[:], nil
	case types.DigestSM3:
		sum := sm3.Sum(data)
		return sum[:], nil
	}
	return nil, &types.ErrUnsupportedCurve{Curve: string(name), Operation: "digest"}
}
