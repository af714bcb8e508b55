// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aumos-ai/didkey/keys"
)

const (
	exitOK               = 0
	exitFailure          = 1
	exitInvalidSignature = 2
)

func run(args []string) int {
	if len(args) < 2 {
		usage(args)
		return exitFailure
	}

	switch args[1] {
	case "generate":
		return runGenerate(args[2:])
	case "resolve":
		return runResolve(args[2:])
	case "sign":
		return runSign(args[2:])
	case "verify":
		return runVerify(args[2:])
	case "curves":
		return runCurves(args[2:])
	}

	usage(args)
	return exitFailure
}

func usage(args []string) {
	name := "didkey"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s generate <curve> [--secure-hex <hex>] [--out <file>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s resolve <did> [--out <file>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s sign --jwk <private.json> --in <payload> [--out <file>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s verify (--jwk <public.json>|--method <did-url>) --in <payload> --sig <token>\n", name)
	fmt.Fprintf(os.Stderr, "  %s curves\n", name)
}

// writeOutput writes payload to path, or to stdout when path is empty.
func writeOutput(path string, payload []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(path, append(payload, '\n'))
}

func readJWK(path string) (keys.JWK, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return keys.JWK{}, err
	}
	var j keys.JWK
	if err := json.Unmarshal(raw, &j); err != nil {
		return keys.JWK{}, fmt.Errorf("decode jwk: %w", err)
	}
	return j, nil
}
