// Package backup reverses the encrypted container format Zalo uses for
// chat exports: a tar archive run through AES-256-CBC with a key and IV
// derived from the user's passphrase and the container's filename shape.
//
// The format carries no integrity check. A wrong passphrase never fails
// here; it produces garbage plaintext that surfaces later as an archive
// format error, and callers must treat that as the bad-passphrase signal.
package backup

import (
	"crypto/aes"
	"crypto/sha256"
	"path/filepath"
	"strings"
)

// legacyIVPrefix is the literal 3-byte prefix of the IV used by the older
// multi-suffix export format. It must match the producing application
// byte for byte.
const legacyIVPrefix = "zie"

// DeriveKey derives the AES-256 key from the raw passphrase bytes.
func DeriveKey(passphrase []byte) [32]byte {
	return sha256.Sum256(passphrase)
}

// SelectIV picks the CBC initialization vector for a container. The choice
// is a structural property of the filename, not of its content: exactly
// one extension suffix means the newer export format (all-zero IV), more
// than one means the older format ("zie" + the first 13 passphrase bytes,
// zero padded). Both variants exist in the wild and must be preserved
// exactly.
func SelectIV(passphrase []byte, filename string) []byte {
	iv := make([]byte, aes.BlockSize)
	if len(suffixes(filename)) == 1 {
		return iv
	}
	n := copy(iv, legacyIVPrefix)
	copy(iv[n:], passphrase)
	return iv
}

// suffixes returns every dot-separated extension of the path's final
// element, mirroring the suffix semantics of the producing application
// ("backup.tar.enc" has two, "backup.enc" has one). A leading dot on the
// name itself does not count.
func suffixes(name string) []string {
	base := filepath.Base(filepath.Clean(name))
	base = strings.TrimPrefix(base, ".")
	parts := strings.Split(base, ".")
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		out = append(out, "."+p)
	}
	return out
}

// StripSuffixes removes every extension suffix from the path's final
// element. The result names the directory the archive is extracted into.
func StripSuffixes(path string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	hidden := strings.HasPrefix(base, ".")
	trimmed := strings.TrimPrefix(base, ".")
	if i := strings.IndexByte(trimmed, '.'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if hidden {
		trimmed = "." + trimmed
	}
	return filepath.Join(dir, trimmed)
}
