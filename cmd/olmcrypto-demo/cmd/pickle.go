package cmd

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matrix-org/olm-crypto-go/internal/logging"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/aescbc"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/hashkdf"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/obase64"
	"github.com/matrix-org/olm-crypto-go/pkg/olmcrypto/securemem"
)

// account is a toy encrypted-blob store row: a name and the
// seal()-produced ciphertext for that account's serialized state.
//
// This does not implement Olm's own pickle key-derivation schedule or
// wire format (spec.md §1 lists account serialization as a CORE
// non-goal); it only demonstrates the primitive layer composing
// AES-CBC with a separately keyed HMAC for a caller that needs to
// persist something.
type account struct {
	Name      string `gorm:"primaryKey"`
	Sealed    string
	UpdatedAt time.Time
}

func openStore(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&account{}); err != nil {
		return nil, fmt.Errorf("migrating store schema: %w", err)
	}
	return db, nil
}

var (
	pickleDB   string
	pickleKey  string
	pickleName string
)

var pickleCmd = &cobra.Command{
	Use:   "pickle [plaintext]",
	Short: "Seal a payload and store it under an account name in a local SQLite file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secret, err := obase64.DecodeString(pickleKey)
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
		sealed := obase64.EncodeToString(append(tagged, tag[:]...))

		db, err := openStore(pickleDB)
		if err != nil {
			return err
		}
		row := account{Name: pickleName, Sealed: sealed, UpdatedAt: time.Now()}
		if err := db.Save(&row).Error; err != nil {
			return fmt.Errorf("saving account %q: %w", pickleName, err)
		}

		logger.Info(cmd.Context(), "pickled account", "account", pickleName, logging.Redacted("key"))
		fmt.Fprintf(cmd.OutOrStdout(), "stored account %q\n", pickleName)
		return nil
	},
}

func init() {
	pickleCmdInit()
}

func pickleCmdInit() {
	pickleCmd.Flags().StringVar(&pickleDB, "db", "olmcrypto-demo.sqlite", "path to the SQLite store")
	pickleCmd.Flags().StringVar(&pickleKey, "key", "", "base64-encoded shared secret to derive the seal keys from")
	pickleCmd.Flags().StringVar(&pickleName, "name", "", "account name to store the sealed payload under")
}
