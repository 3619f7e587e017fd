// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from the rest of recode
package encoding

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Load resolves an encoding name to its codec, or nil if the name is
// not recognized. Names that the switch does not spell out explicitly
// (gb2312 among them) fall through to the WHATWG charset index.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "utf16", "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16-le", "utf16le", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16-be", "utf16be", "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "utf32", "utf-32":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	case "ascii", "us-ascii":
		return ASCII
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1
	case "cp1252", "windows-1252", "windows1252":
		return charmap.Windows1252
	case "big5":
		return traditionalchinese.Big5
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	}

	// the WHATWG index maps gb2312 to GBK, a superset, so some runes
	// a strict gb2312 codec would reject will encode successfully
	if e, _ := charset.Lookup(name); e != nil {
		return e
	}
	return nil
}

// ASCII is a strict 7-bit US-ASCII codec. golang.org/x/text does not
// ship one, and the WHATWG index aliases "ascii" to windows-1252,
// which silently passes bytes >= 0x80 through.
var ASCII enc.Encoding = asciiEncoding{}

var errNotASCII = errors.New("encoding: byte outside us-ascii range")

type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *enc.Decoder {
	return &enc.Decoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) NewEncoder() *enc.Encoder {
	return &enc.Encoder{Transformer: asciiTransformer{}}
}

// asciiTransformer is its own inverse: both directions copy bytes
// below 0x80 and fail on anything else.
type asciiTransformer struct{}

func (asciiTransformer) Reset() {}

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if src[nSrc] >= utf8.RuneSelf {
			return nDst, nSrc, errNotASCII
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = src[nSrc]
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
