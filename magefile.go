//go:build mage

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Build

// Build cross-compiles the maxsun CLI for Windows, where the service lives
func Build(ctx context.Context) error {
	mg.CtxDeps(ctx, Test)
	fmt.Println("Building maxsun...")
	output := envOrDefault("MAXSUN_BINARY", "maxsun.exe")
	env := map[string]string{
		"GOOS":   "windows",
		"GOARCH": envOrDefault("GOARCH", "amd64"),
	}
	return sh.RunWithV(env, "go", "build", "-o", output, "./cmd/maxsun")
}

// Test runs the test suites
func Test(ctx context.Context) error {
	fmt.Println("Testing...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet checks the Windows build, which tests on other hosts do not compile
func Vet(ctx context.Context) error {
	return sh.RunWithV(map[string]string{"GOOS": "windows"}, "go", "vet", "./...")
}

func envOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
