// Command passgen generates passwords, passphrases and PINs and estimates
// their strength from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(crypto.NewGenerator()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
