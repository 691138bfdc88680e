package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"

	"github.com/matrix-org/olm-crypto-go/internal/logging"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/curve25519"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/ed25519"
)

var (
	logLevel     slog.LevelVar
	logger       logging.Logger
	usePlatform  bool
	debugLogging bool
)

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "olmcrypto-demo",
	Short: "Exercises the olm-crypto-go primitive layer end to end",
	Long: `olmcrypto-demo drives the Curve25519, Ed25519, AES-256-CBC, and
HKDF-SHA-256 primitives from the command line: key generation, signing
and verification, authenticated sealing of a payload, and a toy
encrypted-account store backed by SQLite.

None of this logic lives in the primitive packages themselves, which
stay stateless and free of I/O; this CLI is an external caller exactly
like an Olm session implementation would be.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debugLogging = viper.GetBool("debug")
		if debugLogging {
			logLevel.Set(slog.LevelDebug)
		}
		usePlatform = viper.GetBool("platform-backend")
		if usePlatform {
			curve25519.UsePlatformBackend()
			ed25519.UsePlatformBackend()
			logger.Warn(cmd.Context(), "platform crypto backend selected; operations fail until a platform implementation is built in")
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmdInit()
}

// rootCmdInit wires the logging default, persistent flags, and
// subcommands onto rootCmd. It is idempotent with respect to viper (each
// BindPFlag call just rebinds the same key) so tests can call it again
// after resetting rootCmd's flags and commands.
func rootCmdInit() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))
	logger = logging.New(nil)

	rootCmd.PersistentFlags().Bool("debug", false, "print debug-level log output")
	rootCmd.PersistentFlags().Bool("platform-backend", false, "select the platform crypto backend instead of the bundled portable one")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("platform-backend", rootCmd.PersistentFlags().Lookup("platform-backend"))

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(sealCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(pickleCmd)
	rootCmd.AddCommand(unpickleCmd)
}
