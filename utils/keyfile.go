package utils

import (
	"fmt"
	"os"
)

// DefaultKeyFile is the fixed path the default keypair private key is
// written to. An existing file at this path is overwritten.
const DefaultKeyFile = "lfr-default-key.pem"

func WriteDefaultKey(privateKey string) error {
	if err := os.WriteFile(DefaultKeyFile, []byte(privateKey), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", DefaultKeyFile, err)
	}
	return nil
}
