// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/aumos-ai/didkey/curves"
	"github.com/aumos-ai/didkey/identity"
)

func runGenerate(args []string) int {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(os.Stderr, "generate requires <curve>")
		return exitFailure
	}
	curve := args[0]

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var secureHex string
	var outPath string
	fs.StringVar(&secureHex, "secure-hex", "", "raw private key hex (seed or scalar)")
	fs.StringVar(&outPath, "out", "", "output path (default stdout)")

	if err := fs.Parse(args[1:]); err != nil {
		return exitFailure
	}

	var opts identity.GenerateOptions
	if secureHex != "" {
		secure, err := hex.DecodeString(secureHex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode secure-hex: %v\n", err)
			return exitFailure
		}
		opts.Secure = secure
	}

	res, err := identity.Generate(curve, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return exitFailure
	}
	if err := writeJSON(outPath, res); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func runResolve(args []string) int {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(os.Stderr, "resolve requires <did>")
		return exitFailure
	}
	did := args[0]

	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var outPath string
	fs.StringVar(&outPath, "out", "", "output path (default stdout)")

	if err := fs.Parse(args[1:]); err != nil {
		return exitFailure
	}

	res, err := identity.Resolve(did)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve: %v\n", err)
		return exitFailure
	}
	if err := writeJSON(outPath, res); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return exitFailure
	}
	return exitOK
}

type curveInfo struct {
	Name          string   `json:"name"`
	TypeCode      string   `json:"typeCode"`
	Algorithm     string   `json:"alg,omitempty"`
	Digest        string   `json:"digest,omitempty"`
	Relationships []string `json:"relationships,omitempty"`
}

func runCurves(args []string) int {
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "curves takes no arguments")
		return exitFailure
	}

	var out []curveInfo
	for _, p := range curves.All() {
		info := curveInfo{
			Name:      string(p.Name),
			TypeCode:  fmt.Sprintf("0x%04x", p.TypeCode),
			Algorithm: string(p.Algorithm),
			Digest:    string(p.Digest),
		}
		for _, r := range p.Relationships {
			info.Relationships = append(info.Relationships, string(r))
		}
		out = append(out, info)
	}
	if err := writeJSON("", out); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return exitFailure
	}
	return exitOK
}
