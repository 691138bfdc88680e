package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrix-org/olm-crypto-go/internal/logging"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/ed25519"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
)

var signPrivateKey string

var signCmd = &cobra.Command{
	Use:   "sign [message]",
	Short: "Sign a message with a base64-encoded Ed25519 private key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if signPrivateKey == "" {
			return fmt.Errorf("--private is required")
		}
		privBytes, err := obase64.DecodeString(signPrivateKey)
		if err != nil {
			return fmt.Errorf("decoding --private: %w", err)
		}
		if len(privBytes) != ed25519.PrivateKeySize {
			return fmt.Errorf("--private must decode to %d bytes, got %d", ed25519.PrivateKeySize, len(privBytes))
		}
		var priv [64]byte
		copy(priv[:], privBytes)

		sig, err := ed25519.Sign(priv, []byte(args[0]))
		if err != nil {
			return err
		}
		logger.Info(cmd.Context(), "signed message", logging.Redacted("private_key"), "message_len", len(args[0]))
		fmt.Fprintln(cmd.OutOrStdout(), obase64.EncodeToString(sig[:]))
		return nil
	},
}

func init() {
	signCmdInit()
}

func signCmdInit() {
	signCmd.Flags().StringVar(&signPrivateKey, "private", "", "base64-encoded 64-byte Ed25519 private key")
}
