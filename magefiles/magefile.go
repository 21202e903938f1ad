//go:build mage

// Package main provides build targets for the omniadapt project using Mage.
//
// Usage:
//
//	mage build     Compile omniadapt binary to bin/
//	mage test      Run all tests
//	mage testunit  Run package unit tests only
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install omniadapt to GOPATH/bin
//	mage stats     Print Go line counts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "omniadapt"
	binaryDir  = "bin"
	cmdDir     = "./cmd/omniadapt"
)

// Build compiles the omniadapt binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestUnit runs only package unit tests, excluding any tests/ directory.
func TestUnit() error {
	pkgs, err := sh.Output("go", "list", "./...")
	if err != nil {
		return err
	}
	var unitPkgs []string
	for _, pkg := range strings.Split(pkgs, "\n") {
		if pkg != "" && !strings.Contains(pkg, "/tests/") && !strings.HasSuffix(pkg, "/tests") {
			unitPkgs = append(unitPkgs, pkg)
		}
	}
	if len(unitPkgs) == 0 {
		fmt.Println("No unit test packages found.")
		return nil
	}
	args := append([]string{"test"}, unitPkgs...)
	return sh.RunV("go", args...)
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install installs the omniadapt binary to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
