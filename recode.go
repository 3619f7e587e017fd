// Package recode converts text files between character encodings. The
// source encoding is discovered by trial decoding against a fixed,
// ordered candidate list; the target encoding must be a member of
// SupportedEncodings. There is no statistical detection involved: the
// candidate order itself is the heuristic, with latin-1 and friends
// acting as a catch-all at the end of the list.
package recode

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/lestrrat-go/recode/encoding"
	"github.com/lestrrat-go/recode/internal/debug"
	"github.com/pkg/errors"
)

// decodeCandidate pairs an encoding name with a strict decode attempt.
// The decoders in golang.org/x/text substitute U+FFFD for invalid input
// instead of reporting an error, which would make every candidate
// "succeed" and defeat the fallback order, so each candidate carries
// its own strict decoder.
type decodeCandidate struct {
	name   string
	decode func([]byte) (string, error)
}

// Candidate order matters: the narrow UTF variants go first because
// latin-1/cp1252/ascii accept nearly any byte sequence and would mask
// genuine UTF content if tried earlier.
var decodeCandidates = []decodeCandidate{
	{"utf-8", decodeUTF8},
	{"utf-16-le", decodeUTF16LE},
	{"utf-16-be", decodeUTF16BE},
	{"utf-16", decodeUTF16},
	{"latin-1", decodeLatin1},
	{"cp1252", decodeCP1252},
	{"ascii", decodeASCII},
}

// BOM patterns
var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Transcode reads the file at inputPath, decodes it using the fallback
// candidate list, and writes the text re-encoded in the target encoding
// (default "utf-8", override with WithEncoding). The output path is
// derived as {dir}/{stem}_{encoding}{ext} unless WithOutput is given.
// Returns the path that was written. The file at the output path is
// created or overwritten; no guard exists against the output path being
// the input path itself.
func Transcode(inputPath string, options ...Option) (string, error) {
	target := DefaultEncoding
	var outputPath string
	for _, o := range options {
		switch o.Ident().(type) {
		case identEncoding:
			target = o.Value().(string)
		case identOutput:
			outputPath = o.Value().(string)
		}
	}

	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound{Path: inputPath}
		}
		return "", errors.Wrap(err, "failed to stat input file")
	}

	if !isSupportedEncoding(target) {
		return "", ErrUnsupportedEncoding{Name: target}
	}

	enc := encoding.Load(target)
	if enc == nil {
		// every registry member resolves; a miss means the name
		// slipped past the registry check with an unknown spelling
		return "", ErrUnsupportedEncoding{Name: target}
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to read input file")
	}

	text, err := decodeWithFallback(data)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = deriveOutputPath(inputPath, target)
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return "", ErrEncode{Encoding: target, Err: err}
	}

	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write output file")
	}

	if debug.Enabled {
		debug.Printf("transcoded %s -> %s (%s)", inputPath, outputPath, target)
	}
	return outputPath, nil
}

// DetectEncoding reports the name of the first decode candidate that
// can decode the file at inputPath, or EncodingUnknown if none can.
// It applies the exact same candidates in the exact same order as
// Transcode, so its answer is consistent with what Transcode used.
// Informational only; no BOM stripping, no content returned.
func DetectEncoding(inputPath string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound{Path: inputPath}
		}
		return "", errors.Wrap(err, "failed to read input file")
	}

	for _, c := range decodeCandidates {
		if _, err := c.decode(data); err == nil {
			return c.name, nil
		}
	}
	return EncodingUnknown, nil
}

func isSupportedEncoding(name string) bool {
	for _, e := range SupportedEncodings {
		if e == name {
			return true
		}
	}
	return false
}

func deriveOutputPath(inputPath, target string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(filepath.Base(inputPath), ext)
	return filepath.Join(filepath.Dir(inputPath), stem+"_"+target+ext)
}

// decodeWithFallback tries each candidate in order and returns the
// first successful decode, with a single leading U+FEFF stripped.
func decodeWithFallback(data []byte) (string, error) {
	for _, c := range decodeCandidates {
		text, err := c.decode(data)
		if err != nil {
			if debug.Enabled {
				debug.Printf("decode as %s failed: %s", c.name, err)
			}
			continue
		}
		if debug.Enabled {
			debug.Printf("decoded input as %s", c.name)
		}
		return strings.TrimPrefix(text, "\ufeff"), nil
	}

	names := make([]string, len(decodeCandidates))
	for i, c := range decodeCandidates {
		names[i] = c.name
	}
	return "", ErrDecode{Candidates: names}
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("input is not valid utf-8")
	}
	return string(data), nil
}

func decodeUTF16LE(data []byte) (string, error) {
	return decodeUTF16Units(data, false)
}

func decodeUTF16BE(data []byte) (string, error) {
	return decodeUTF16Units(data, true)
}

// decodeUTF16 is the BOM-sensitive variant: a BOM picks the byte order
// and is consumed; without one the input is taken as little-endian.
func decodeUTF16(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16Units(data[2:], true)
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16Units(data[2:], false)
	default:
		return decodeUTF16Units(data, false)
	}
}

func decodeUTF16Units(data []byte, bigEndian bool) (string, error) {
	if len(data)%2 != 0 {
		return "", errors.New("truncated utf-16 sequence")
	}

	units := make([]uint16, 0, len(data)/2)
	for i := 0; i < len(data); i += 2 {
		if bigEndian {
			units = append(units, uint16(data[i])<<8|uint16(data[i+1]))
		} else {
			units = append(units, uint16(data[i+1])<<8|uint16(data[i]))
		}
	}

	// utf16.Decode silently maps unpaired surrogates to U+FFFD, so
	// validate pairing up front
	for i := 0; i < len(units); i++ {
		switch c := units[i]; {
		case c >= 0xD800 && c <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", errors.New("unpaired utf-16 surrogate")
			}
			i++
		case c >= 0xDC00 && c <= 0xDFFF:
			return "", errors.New("unpaired utf-16 surrogate")
		}
	}

	return string(utf16.Decode(units)), nil
}

// latin-1 maps every byte to the code point of the same value, so this
// decode cannot fail. It is the catch-all of the candidate list.
func decodeLatin1(data []byte) (string, error) {
	return encoding.Load("latin-1").NewDecoder().String(string(data))
}

func decodeCP1252(data []byte) (string, error) {
	// the x/text windows-1252 table passes the five undefined bytes
	// through as C1 controls; reject them so the attempt can fail
	// over like a strict decoder would
	for _, b := range data {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return "", errors.Errorf("byte %#x is not defined in cp1252", b)
		}
	}
	return encoding.Load("cp1252").NewDecoder().String(string(data))
}

func decodeASCII(data []byte) (string, error) {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return "", errors.Errorf("byte %#x is outside the us-ascii range", b)
		}
	}
	return string(data), nil
}
