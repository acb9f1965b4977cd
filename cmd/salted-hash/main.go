package main

/*
NAME
salted-hash - Create bcrypt hash from cleartext password

SYNOPSIS
salted-hash

DESCRIPTION
Asks for a password and prints its salted bcrypt hash.
Only the first line of input is used. Input without any line,
not even an empty one, is an error. Echo is switched off if STDIN
is a terminal. The prompt is written to STDERR, such that STDOUT
only carries the result.

Environment variable BCRYPT_COST sets the work factor, 4..31.
Default is 12.
*/

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

const (
	prompt = "Enter the password to encrypt: "
	label  = "Hashed with the adaptive hash algorithm:"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out, msg io.Writer) error {
	cost, err := costFromEnv()
	if err != nil {
		return err
	}
	fmt.Fprint(msg, prompt)
	pass, err := readPassword(in)
	fmt.Fprintln(msg)
	if err != nil {
		return err
	}
	hash, err := generateHash(pass, cost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n", label, hash)
	return err
}

// Read first line of input.
func readPassword(in io.Reader) ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pass, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return nil, fmt.Errorf("Can't read password: %w", err)
		}
		return pass, nil
	}
	// Don't wait for EOF, input may come from an interactive pipe.
	// Last line may lack "\n", but there must be at least one line.
	line, err := bufio.NewReader(in).ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, fmt.Errorf("Can't read password: %w", err)
	}
	pass := bytes.TrimSuffix(line, []byte("\n"))
	pass = bytes.TrimSuffix(pass, []byte("\r"))
	return pass, nil
}
