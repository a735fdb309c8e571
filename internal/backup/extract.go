package backup

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/j1nxie/app-z-to-dht/internal/common"
)

// ExtractBackup decrypts and extracts an encrypted Zalo backup container.
// The archive is materialized under the container path stripped of all
// its suffixes. It returns the account id of the backup owner and the
// extraction directory.
//
// The decrypted scratch artifact is always removed before returning.
func ExtractBackup(passphrase []byte, containerPath string) (account, dir string, err error) {
	key := DeriveKey(passphrase)
	iv := SelectIV(passphrase, containerPath)

	scratch, err := DecryptToScratch(containerPath, key, iv)
	if err != nil {
		return "", "", err
	}
	defer os.Remove(scratch)

	f, err := os.Open(scratch)
	if err != nil {
		return "", "", fmt.Errorf("failed to reopen scratch file: %w", err)
	}
	defer f.Close()

	dir = StripSuffixes(containerPath)
	account, err = Extract(f, dir)
	if err != nil {
		return "", "", err
	}
	return account, dir, nil
}

// Extract reads a tar stream and materializes it under dest, creating
// dest if needed. Entries that would escape dest are rejected, as are
// entry types other than directories and regular files: the archive
// contents are untrusted. It returns the name of the single top-level
// entry, which the backup format defines as the account id; any other
// top-level shape is a format error.
//
// A header that does not parse is also a format error — with this
// container format, that is usually the first visible sign of a wrong
// passphrase.
func Extract(r io.Reader, dest string) (string, error) {
	if err := os.MkdirAll(dest, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dest, err)
	}

	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", common.NewFormatError(dest, 0, "",
				fmt.Errorf("reading tar header (wrong passphrase?): %w", err))
		}

		target, err := securePath(dest, hdr.Name)
		if err != nil {
			return "", common.NewFormatError(dest, 0, hdr.Name, err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o770); err != nil {
				return "", fmt.Errorf("mkdir %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr); err != nil {
				return "", err
			}
		default:
			return "", common.NewFormatError(dest, 0, hdr.Name,
				fmt.Errorf("unsupported archive entry type %d", hdr.Typeflag))
		}
	}

	return accountID(dest)
}

// accountID discovers the backup owner: the extracted archive must have
// exactly one top-level entry, named after the account.
func accountID(dest string) (string, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", dest, err)
	}
	if len(entries) != 1 {
		return "", common.NewFormatError(dest, 0, "",
			fmt.Errorf("expected exactly one top-level entry, found %d", len(entries)))
	}
	return entries[0].Name(), nil
}

func writeFile(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(target), err)
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o660)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return f.Close()
}

// securePath resolves an archive entry name below dest, refusing absolute
// names and anything that climbs out with "..".
func securePath(dest, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry %q escapes the output directory", name)
	}
	return filepath.Join(dest, clean), nil
}
