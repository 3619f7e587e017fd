package recode

// Version is the version of the recode library.
const Version = "0.1.0"

// DefaultEncoding is the target encoding used when the caller does not
// specify one via WithEncoding.
const DefaultEncoding = "utf-8"

// EncodingUnknown is the sentinel returned by DetectEncoding when none
// of the decode candidates can decode the input.
const EncodingUnknown = "unknown"

// SupportedEncodings enumerates the encodings that may be named as a
// transcode *target*. Decode candidates are a separate list with
// different membership rules; see decodeCandidates.
var SupportedEncodings = []string{
	"utf-8",
	"utf-16",
	"utf-32",
	"ascii",
	"latin-1",
	"cp1252",
	"iso-8859-1",
	"windows-1252",
	"big5",
	"gb2312",
	"shift_jis",
}

// ErrNotFound means the input file does not exist.
type ErrNotFound struct {
	Path string
}

// ErrUnsupportedEncoding means the target encoding is not a member of
// SupportedEncodings.
type ErrUnsupportedEncoding struct {
	Name string
}

// ErrDecode means none of the decode candidates could decode the input.
type ErrDecode struct {
	Candidates []string
}

// ErrEncode means the decoded text contains characters that the target
// encoding cannot represent.
type ErrEncode struct {
	Encoding string
	Err      error
}
