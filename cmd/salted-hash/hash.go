package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Work factor used if BCRYPT_COST isn't set.
const defaultCost = 12

const costVar = "BCRYPT_COST"

// Create salted bcrypt hash from cleartext password.
// A fresh salt is read from crypto/rand on each call.
func generateHash(pass []byte, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(pass, cost)
	if err != nil {
		return "", fmt.Errorf("Can't hash password: %w", err)
	}
	return string(hash), nil
}

// Get work factor from environment.
func costFromEnv() (int, error) {
	v := os.Getenv(costVar)
	if v == "" {
		return defaultCost, nil
	}
	cost, err := strconv.Atoi(v)
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return 0, fmt.Errorf("Invalid value in %s: %q, expected %d..%d",
			costVar, v, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return cost, nil
}
