//go:build mage

// Package main provides build targets for the samples project using Mage.
//
// Usage:
//
//	mage build     Compile samples binary to bin/
//	mage test      Run all tests
//	mage race      Run all tests with the race detector
//	mage lint      Run golangci-lint
//	mage smoke     Build, then init and list against a throwaway data dir
//	mage clean     Remove build artifacts
//	mage install   Install samples to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "samples"
	binaryDir  = "bin"
	cmdDir     = "./cmd/samples"
)

// Build compiles the samples binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Race runs all tests with the race detector.
func Race() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Smoke builds the binary and exercises init and list in a temp directory.
func Smoke() error {
	mg.Deps(Build)

	tmp, err := os.MkdirTemp("", "samples-smoke-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)

	bin := filepath.Join(binaryDir, binaryName)
	dirs := []string{
		"--config-dir", filepath.Join(tmp, "config"),
		"--data-dir", filepath.Join(tmp, "data"),
	}
	for _, args := range [][]string{
		{"init"},
		{"list"},
		{"show", "1"},
		{"--json", "list", "--builtin"},
	} {
		fmt.Println("==>", binaryName, args)
		if err := sh.RunV(bin, append(dirs, args...)...); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
