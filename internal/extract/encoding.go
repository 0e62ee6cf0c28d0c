package extract

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode turns raw file bytes into a UTF-8 string. UTF-16 content is
// recognized by its byte-order mark and transcoded; a UTF-8 BOM is
// stripped. Anything that still isn't valid UTF-8, or that contains NUL
// bytes, is reported as undecodable so the caller can treat the file as
// contributing zero strings.
func decode(content []byte) (string, error) {
	if len(content) >= 2 {
		isLE := content[0] == 0xFF && content[1] == 0xFE
		isBE := content[0] == 0xFE && content[1] == 0xFF
		if isLE || isBE {
			dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
			out, _, err := transform.Bytes(dec, content)
			if err != nil {
				return "", fmt.Errorf("decode utf-16: %w", err)
			}
			return string(out), nil
		}
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if bytes.IndexByte(content, 0x00) >= 0 {
		return "", errors.New("binary content")
	}
	if !utf8.Valid(content) {
		return "", errors.New("content is not valid utf-8")
	}
	return string(content), nil
}
