// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/aumos-ai/didkey/identity"
	"github.com/aumos-ai/didkey/jws"
)

func runSign(args []string) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var jwkPath string
	var inPath string
	var outPath string
	fs.StringVar(&jwkPath, "jwk", "", "private JWK path")
	fs.StringVar(&inPath, "in", "", "payload path")
	fs.StringVar(&outPath, "out", "", "output token path (default stdout)")

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if jwkPath == "" || inPath == "" {
		fmt.Fprintln(os.Stderr, "sign requires --jwk and --in")
		return exitFailure
	}

	j, err := readJWK(jwkPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read jwk: %v\n", err)
		return exitFailure
	}
	payload, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read payload: %v\n", err)
		return exitFailure
	}

	token, err := jws.SignJWK(payload, j)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign: %v\n", err)
		return exitFailure
	}
	if err := writeOutput(outPath, []byte(token+"\n")); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var jwkPath string
	var methodID string
	var inPath string
	var token string
	fs.StringVar(&jwkPath, "jwk", "", "public JWK path")
	fs.StringVar(&methodID, "method", "", "did:key verification method URL")
	fs.StringVar(&inPath, "in", "", "payload path")
	fs.StringVar(&token, "sig", "", "detached JWS token")

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	if (jwkPath == "") == (methodID == "") || inPath == "" || token == "" {
		fmt.Fprintln(os.Stderr, "verify requires one of --jwk or --method, and --in and --sig")
		return exitFailure
	}

	payload, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read payload: %v\n", err)
		return exitFailure
	}

	var ok bool
	if methodID != "" {
		v := identity.NewVerifier(identity.NewDIDResolver(identity.ResolverOptions{}))
		res, err := v.VerifyDetached(context.Background(), payload, token, methodID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			return exitFailure
		}
		ok = res.Valid
	} else {
		j, err := readJWK(jwkPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read jwk: %v\n", err)
			return exitFailure
		}
		ok, err = jws.VerifyJWK(payload, token, j)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			return exitFailure
		}
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "FAIL: signature is invalid")
		return exitInvalidSignature
	}
	fmt.Fprintln(os.Stdout, "OK")
	return exitOK
}
