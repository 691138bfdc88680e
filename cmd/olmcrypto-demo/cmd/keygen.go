package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrix-org/olm-crypto-go/internal/logging"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/curve25519"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/ed25519"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen {curve25519|ed25519}",
	Short: "Generate a keypair and print it base64-encoded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "curve25519":
			priv, pub, err := curve25519.GenerateKeypair(nil)
			if err != nil {
				return err
			}
			logger.Info(cmd.Context(), "generated curve25519 keypair", logging.Redacted("private_key"))
			fmt.Fprintf(cmd.OutOrStdout(), "private: %s\n", obase64.EncodeToString(priv[:]))
			fmt.Fprintf(cmd.OutOrStdout(), "public:  %s\n", obase64.EncodeToString(pub[:]))
			return nil
		case "ed25519":
			priv, pub, err := ed25519.GenerateKeypair(nil)
			if err != nil {
				return err
			}
			logger.Info(cmd.Context(), "generated ed25519 keypair", logging.Redacted("private_key"))
			fmt.Fprintf(cmd.OutOrStdout(), "private: %s\n", obase64.EncodeToString(priv[:]))
			fmt.Fprintf(cmd.OutOrStdout(), "public:  %s\n", obase64.EncodeToString(pub[:]))
			return nil
		default:
			return fmt.Errorf("unknown key type %q: want curve25519 or ed25519", args[0])
		}
	},
}
