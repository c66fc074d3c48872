//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Format runs gofmt on all Go files.
func Format() error {
	fmt.Println("Running gofmt...")
	return sh.RunV("gofmt", "-w", ".")
}

// Vet runs go vet on every package.
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Test runs all tests.
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Build builds the compiler CLI.
func Build() error {
	fmt.Println("Building referee...")
	return sh.RunV("go", "build", "./...")
}

// PreCommit runs all pre-commit checks.
func PreCommit() error {
	fmt.Println("Running pre-commit checks...")
	mg.Deps(Format)
	mg.Deps(Vet)
	mg.Deps(Test)
	mg.Deps(Build)
	fmt.Println("all pre-commit checks passed")
	return nil
}

// CI runs all CI checks.
func CI() error {
	fmt.Println("Running CI checks...")
	return PreCommit()
}

// Default target runs PreCommit.
var Default = PreCommit
