// Command hash-generator prints the bcrypt hash the API would store for a
// password read from stdin, one password per line. It is used to seed users
// directly into the database.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/mesto-api/internal/service/auth"
)

func main() {
	if err := run(os.Stdin, os.Stdout, auth.NewBcryptHasher(auth.PasswordCost)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, hasher auth.PasswordHasher) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		password := scanner.Text()
		if password == "" {
			continue
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return scanner.Err()
}
