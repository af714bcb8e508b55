// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Command didkey generates and resolves did:key identities and signs and
// verifies detached JWS tokens with their keys.
package main

import "os"

func main() {
	os.Exit(run(os.Args))
}
