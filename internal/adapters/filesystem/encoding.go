package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/krw_rates_dashboard/internal/apperrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
)

// DefaultEncodings is the order in which the source file's encoding is guessed.
var DefaultEncodings = []string{"utf-8", "cp949", "euc-kr"}

const byteOrderMark = "\uFEFF"

var errInvalidBytes = errors.New("input is not valid in this encoding")

// lookupEncoding resolves an encoding name. A nil encoding means strict UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8", "utf-8-sig":
		return nil, nil
	case "cp949", "ms949", "uhc", "euc-kr", "euckr":
		// x/text's EUC-KR decoder covers the CP949 extensions.
		return korean.EUCKR, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown encoding %q", apperrors.ErrValidation, name)
	}
	return enc, nil
}

// SupportedEncoding reports whether name can be used as a candidate encoding.
func SupportedEncoding(name string) bool {
	_, err := lookupEncoding(name)
	return err == nil
}

// decodeWith decodes data strictly: any byte sequence the encoding cannot map is an error.
func decodeWith(data []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	if enc == nil {
		if !utf8.Valid(data) {
			return "", errInvalidBytes
		}
		return strings.TrimPrefix(string(data), byteOrderMark), nil
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	// x/text decoders substitute U+FFFD for unmappable input instead of failing.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidBytes
	}
	return strings.TrimPrefix(string(out), byteOrderMark), nil
}

// decodeText tries each candidate encoding in order and returns the first clean decode.
func decodeText(data []byte, candidates []string) (text string, used string, err error) {
	attempts := make([]string, 0, len(candidates))
	for _, name := range candidates {
		text, err := decodeWith(data, name)
		if err == nil {
			return text, name, nil
		}
		attempts = append(attempts, fmt.Sprintf("%s: %v", name, err))
	}
	return "", "", fmt.Errorf("%w: tried [%s]", apperrors.ErrDecodeFailure, strings.Join(attempts, "; "))
}
