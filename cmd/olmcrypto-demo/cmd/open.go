package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/aescbc"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

const hmacTagSize = 32

var openKey string

var openCmd = &cobra.Command{
	Use:   "open [sealed]",
	Short: "Verify and decrypt a payload produced by seal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := obase64.DecodeString(openKey)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		aesKey, hmacKey := deriveSealKeys(secret)
		defer securemem.Scrub(aesKey[:])
		defer securemem.Scrub(hmacKey[:])

		sealed, err := obase64.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("decoding sealed payload: %w", err)
		}
		if len(sealed) < aescbc.IVSize+hmacTagSize {
			return fmt.Errorf("sealed payload too short")
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
	openCmdInit()
}

func openCmdInit() {
	openCmd.Flags().StringVar(&openKey, "key", "", "base64-encoded shared secret the payload was sealed with")
}
