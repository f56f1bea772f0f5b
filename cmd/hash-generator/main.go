// Command hash-generator prints bcrypt digests for seeding the users table.
//
// Usage:
//
//	hash-generator [-cost N] password...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", config.DefaultBcryptCost, "bcrypt work factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	if err := run(os.Stdout, auth.NewBcryptHasher(*cost), flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for _, password := range passwords {
		digest, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if _, err := fmt.Fprintln(w, digest); err != nil {
			return err
		}
	}
	return nil
}
