//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin  = "bin/landing-server"
	leadctlBin = "bin/leadctl"
)

// Build tidies deps, then compiles the server and leadctl into ./bin.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building binaries...")
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", leadctlBin, "./cmd/leadctl")
}

// Run builds then executes the server with config/local.yaml.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server...")
	return sh.RunV(serverBin, "-config", "config/local.yaml")
}

// Dev starts the server via go run.
func Dev() error {
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	cmd := exec.Command("go", "run", "./cmd/server", "-config", "config/local.yaml")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "ENV=local")
	return cmd.Run()
}

// Mocks regenerates the mockery mocks.
func Mocks() error {
	fmt.Println(">> go generate ./...")
	return sh.RunV("go", "generate", "./...")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println(">> Cleaning...")
	return os.RemoveAll("bin")
}

// Install installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Tidy)
	return sh.Run("go", "install", "./cmd/server", "./cmd/leadctl")
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
