package backup

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/j1nxie/app-z-to-dht/internal/common"
)

// decryptChunkSize is how much ciphertext is held in memory at once.
// It is a multiple of the AES block size, so every chunk boundary is a
// block boundary and memory use stays independent of container size.
const decryptChunkSize = 1 << 20

// DecryptToScratch streams the container at src through AES-256-CBC into
// a freshly created scratch file and returns its path. The caller owns
// the scratch file and must remove it. On any failure the partial scratch
// file is removed before returning, so a file that exists is complete.
//
// A container whose length is not a multiple of the cipher block size is
// a FormatError. A wrong key or IV is not detectable here at all.
func DecryptToScratch(src string, key [32]byte, iv []byte) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open container: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat container: %w", err)
	}
	if info.Size()%aes.BlockSize != 0 {
		return "", common.NewFormatError(src, 0, "",
			fmt.Errorf("container length %d is not a multiple of the cipher block size", info.Size()))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("failed to initialize cipher: %w", err)
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	out, err := os.CreateTemp("", "zimport-*.tar")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}

	if err := decryptStream(in, out, mode); err != nil {
		out.Close()
		os.Remove(out.Name())
		return "", err
	}

	if err := out.Close(); err != nil {
		os.Remove(out.Name())
		return "", fmt.Errorf("failed to finalize scratch file: %w", err)
	}
	return out.Name(), nil
}

func decryptStream(in io.Reader, out io.Writer, mode cipher.BlockMode) error {
	buf := make([]byte, decryptChunkSize)
	for {
		n, rerr := io.ReadFull(in, buf)
		if n > 0 {
			if n%aes.BlockSize != 0 {
				return common.NewFormatError("container", 0, "",
					fmt.Errorf("truncated cipher block of %d bytes", n%aes.BlockSize))
			}
			mode.CryptBlocks(buf[:n], buf[:n])
			if _, werr := out.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write plaintext: %w", werr)
			}
		}
		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("failed to read container: %w", rerr)
		}
	}
}
