package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// resetState undoes the one-time effect of the package's init() functions
// so each test starts from a clean cobra/viper state, following the same
// pattern used for this CLI's persistent flags and subcommand flags.
func resetState(t *testing.T) {
	t.Helper()

	viper.Reset()

	rootCmd.ResetFlags()
	rootCmd.ResetCommands()
	rootCmd.SetArgs(nil)

	signCmd.ResetFlags()
	verifyCmd.ResetFlags()
	sealCmd.ResetFlags()
	openCmd.ResetFlags()
	pickleCmd.ResetFlags()
	unpickleCmd.ResetFlags()

	rootCmdInit()
	signCmdInit()
	verifyCmdInit()
	sealCmdInit()
	openCmdInit()
	pickleCmdInit()
	unpickleCmdInit()

	usePlatform = false
	debugLogging = false
}

func run(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return buf.String(), err
}

func TestKeygenCurve25519PrintsBothKeys(t *testing.T) {
	resetState(t)

	out, err := run(t, "keygen", "curve25519")
	require.NoError(t, err)
	require.Contains(t, out, "private: ")
	require.Contains(t, out, "public:  ")
}

func TestKeygenEd25519PrintsBothKeys(t *testing.T) {
	resetState(t)

	out, err := run(t, "keygen", "ed25519")
	require.NoError(t, err)
	require.Contains(t, out, "private: ")
	require.Contains(t, out, "public:  ")
}

func TestKeygenRejectsUnknownKeyType(t *testing.T) {
	resetState(t)

	_, err := run(t, "keygen", "rsa")
	require.Error(t, err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	resetState(t)
	out, err := run(t, "keygen", "ed25519")
	require.NoError(t, err)

	priv, pub := extractKeygenOutput(t, out)

	resetState(t)
	sigOut, err := run(t, "sign", "--private", priv, "hello, olm")
	require.NoError(t, err)
	sig := strings.TrimSpace(sigOut)

	resetState(t)
	verifyOut, err := run(t, "verify", "--public", pub, "--signature", sig, "hello, olm")
	require.NoError(t, err)
	require.Contains(t, verifyOut, "valid")
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	resetState(t)
	out, err := run(t, "keygen", "ed25519")
	require.NoError(t, err)
	priv, pub := extractKeygenOutput(t, out)

	resetState(t)
	sigOut, err := run(t, "sign", "--private", priv, "hello, olm")
	require.NoError(t, err)
	sig := strings.TrimSpace(sigOut)

	resetState(t)
	_, err = run(t, "verify", "--public", pub, "--signature", sig, "goodbye, olm")
	require.Error(t, err)
}

func TestSealOpenRoundTrip(t *testing.T) {
	resetState(t)
	sharedKey := "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"

	sealOut, err := run(t, "seal", "--key", sharedKey, "the quick brown fox")
	require.NoError(t, err)
	sealed := strings.TrimSpace(sealOut)

	resetState(t)
	openOut, err := run(t, "open", "--key", sharedKey, sealed)
	require.NoError(t, err)
	require.Equal(t, "the quick brown fox", strings.TrimSpace(openOut))
}

func TestOpenRejectsWrongKey(t *testing.T) {
	resetState(t)
	sharedKey := "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"
	otherKey := "ZmVkY2JhOTg3NjU0MzIxMGZlZGNiYTk4NzY1NDMyMTA"

	sealOut, err := run(t, "seal", "--key", sharedKey, "the quick brown fox")
	require.NoError(t, err)
	sealed := strings.TrimSpace(sealOut)

	resetState(t)
	_, err = run(t, "open", "--key", otherKey, sealed)
	require.Error(t, err)
}

func TestPickleUnpickleRoundTrip(t *testing.T) {
	resetState(t)
	dbPath := filepath.Join(t.TempDir(), "accounts.sqlite")
	sharedKey := "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"

	_, err := run(t, "pickle", "--db", dbPath, "--key", sharedKey, "--name", "alice", "alice's account state")
	require.NoError(t, err)

	resetState(t)
	out, err := run(t, "unpickle", "--db", dbPath, "--key", sharedKey, "--name", "alice")
	require.NoError(t, err)
	require.Equal(t, "alice's account state", strings.TrimSpace(out))
}

func TestUnpickleRejectsMissingAccount(t *testing.T) {
	resetState(t)
	dbPath := filepath.Join(t.TempDir(), "accounts.sqlite")
	sharedKey := "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY"

	_, err := run(t, "pickle", "--db", dbPath, "--key", sharedKey, "--name", "alice", "alice's account state")
	require.NoError(t, err)

	resetState(t)
	_, err = run(t, "unpickle", "--db", dbPath, "--key", sharedKey, "--name", "bob")
	require.Error(t, err)
}

// extractKeygenOutput parses the "private: ...\npublic:  ...\n" output of
// the keygen command into its two base64 fields.
func extractKeygenOutput(t *testing.T, out string) (priv, pub string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	priv = strings.TrimSpace(strings.TrimPrefix(lines[0], "private:"))
	pub = strings.TrimSpace(strings.TrimPrefix(lines[1], "public:"))
	return priv, pub
}
