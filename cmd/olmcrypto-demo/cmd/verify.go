package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/ed25519"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
)

var (
	verifyPublicKey string
	verifySignature string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [message]",
	Short: "Verify an Ed25519 signature over a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pubBytes, err := obase64.DecodeString(verifyPublicKey)
		if err != nil {
			return fmt.Errorf("decoding --public: %w", err)
		}
		if len(pubBytes) != ed25519.PublicKeySize {
			return fmt.Errorf("--public must decode to %d bytes, got %d", ed25519.PublicKeySize, len(pubBytes))
		}
		sigBytes, err := obase64.DecodeString(verifySignature)
		if err != nil {
			return fmt.Errorf("decoding --signature: %w", err)
		}
		if len(sigBytes) != ed25519.SignatureSize {
			return fmt.Errorf("--signature must decode to %d bytes, got %d", ed25519.SignatureSize, len(sigBytes))
		}

		var pub [32]byte
		copy(pub[:], pubBytes)
		var sig [64]byte
		copy(sig[:], sigBytes)

		ok, err := ed25519.Verify(pub, []byte(args[0]), sig)
		if err != nil {
			return err
		}
		logger.Info(cmd.Context(), "verified signature", "valid", ok)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			cmd.SilenceUsage = true
			return fmt.Errorf("signature does not verify")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	verifyCmdInit()
}

func verifyCmdInit() {
	verifyCmd.Flags().StringVar(&verifyPublicKey, "public", "", "base64-encoded 32-byte Ed25519 public key")
	verifyCmd.Flags().StringVar(&verifySignature, "signature", "", "base64-encoded 64-byte Ed25519 signature")
}
