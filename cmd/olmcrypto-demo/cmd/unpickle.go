package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/aescbc"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

var (
	unpickleDB   string
	unpickleKey  string
	unpickleName string
)

var unpickleCmd = &cobra.Command{
	Use:   "unpickle",
	Short: "Load, verify, and decrypt a sealed account from the SQLite store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := obase64.DecodeString(unpickleKey)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		aesKey, hmacKey := deriveSealKeys(secret)
		defer securemem.Scrub(aesKey[:])
		defer securemem.Scrub(hmacKey[:])

		db, err := openStore(unpickleDB)
		if err != nil {
			return err
		}

		var row account
		if err := db.First(&row, "name = ?", unpickleName).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("no account named %q in %s", unpickleName, unpickleDB)
			}
			return fmt.Errorf("loading account %q: %w", unpickleName, err)
		}

		sealed, err := obase64.DecodeString(row.Sealed)
		if err != nil {
			return fmt.Errorf("decoding stored payload: %w", err)
		}
		if len(sealed) < aescbc.IVSize+hmacTagSize {
			return fmt.Errorf("stored payload too short")
		}

		tagged := sealed[:len(sealed)-hmacTagSize]
		gotTag := sealed[len(sealed)-hmacTagSize:]
		wantTag := hashkdf.HMACSHA256(hmacKey[:], tagged)
		if !securemem.ConstantTimeEqual(wantTag[:], gotTag, hmacTagSize) {
			return fmt.Errorf("authentication failed: tag mismatch")
		}

		iv := tagged[:aescbc.IVSize]
		ciphertext := tagged[aescbc.IVSize:]
		plaintext, err := aescbc.Decrypt(aesKey[:], iv, ciphertext)
		if err != nil {
			return err
		}
		defer securemem.Scrub(plaintext)

		fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
		return nil
	},
}

func init() {
	unpickleCmdInit()
}

func unpickleCmdInit() {
	unpickleCmd.Flags().StringVar(&unpickleDB, "db", "olmcrypto-demo.sqlite", "path to the SQLite store")
	unpickleCmd.Flags().StringVar(&unpickleKey, "key", "", "base64-encoded shared secret the payload was sealed with")
	unpickleCmd.Flags().StringVar(&unpickleName, "name", "", "account name to load")
}
