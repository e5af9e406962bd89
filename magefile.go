//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified.
var Default = Test

// Test runs the module's full test suite.
func Test() error {
	fmt.Println("running mixfix test suite")
	return sh.RunV("go", "test", "-v", "./...")
}

// Bench runs the combinator and mixfix benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy cleans and organizes go.mod.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// CI runs the sequence a continuous integration job should run.
func CI() error {
	mg.SerialDeps(Vet, Test)
	return nil
}
