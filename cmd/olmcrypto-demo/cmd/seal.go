package cmd

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matrix-org/olm-crypto-go/internal/logging"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/aescbc"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

// deriveSealKeys expands a single shared secret into an independent
// AES key and HMAC key using HKDF-SHA-256 with distinct info strings,
// per spec §4.4's design rationale that AES-CBC provides no integrity
// on its own and the caller must supply a separately keyed MAC.
func deriveSealKeys(secret []byte) (aesKey, hmacKey [32]byte) {
	okm := hashkdf.HKDF(nil, secret, []byte("olmcrypto-demo seal v1"), 64)
	defer securemem.Scrub(okm)
	copy(aesKey[:], okm[:32])
	copy(hmacKey[:], okm[32:])
	return aesKey, hmacKey
}

var sealKey string

var sealCmd = &cobra.Command{
	Use:   "seal [plaintext]",
	Short: "Encrypt-then-MAC a payload with AES-256-CBC and HMAC-SHA-256",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := obase64.DecodeString(sealKey)
		if err != nil {
			return fmt.Errorf("decoding --key: %w", err)
		}
		aesKey, hmacKey := deriveSealKeys(secret)
		defer securemem.Scrub(aesKey[:])
		defer securemem.Scrub(hmacKey[:])

		var iv [aescbc.IVSize]byte
		if _, err := io.ReadFull(rand.Reader, iv[:]); err != nil {
			return fmt.Errorf("generating iv: %w", err)
		}

		ciphertext, err := aescbc.Encrypt(aesKey[:], iv[:], []byte(args[0]))
		if err != nil {
			return err
		}

		tagged := append(append([]byte{}, iv[:]...), ciphertext...)
		tag := hashkdf.HMACSHA256(hmacKey[:], tagged)

		sealed := append(tagged, tag[:]...)
		logger.Info(cmd.Context(), "sealed payload", logging.Redacted("key"), "plaintext_len", len(args[0]))
		fmt.Fprintln(cmd.OutOrStdout(), obase64.EncodeToString(sealed))
		return nil
	},
}

func init() {
	sealCmdInit()
}

func sealCmdInit() {
	sealCmd.Flags().StringVar(&sealKey, "key", "", "base64-encoded shared secret to derive the seal keys from")
}
