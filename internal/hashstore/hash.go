package hashstore

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// Buffer size used when hashing file contents.
const hashBufferSize = 32 * 1024

var bufferPool = sync.Pool{
	New: func() interface{} {
		buffer := make([]byte, hashBufferSize)
		return &buffer
	},
}

// HashBytes returns the hex-encoded xxHash64 digest of b.
// xxHash is fast and non-cryptographic, which is all change detection needs.
func HashBytes(b []byte) string {
	h := xxhash.New()
	_, _ = h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

// HashFile returns the hex-encoded xxHash64 digest of a file's contents.
func HashFile(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := xxhash.New()
	bufPtr := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufPtr)

	if _, err := io.CopyBuffer(h, f, *bufPtr); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
