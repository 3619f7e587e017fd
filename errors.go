package recode

import (
	"fmt"
	"strings"
)

func (e ErrNotFound) Error() string {
	return "input file not found: " + e.Path
}

func (e ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf(
		"unsupported encoding: %s. supported encodings: %s",
		e.Name,
		strings.Join(SupportedEncodings, ", "),
	)
}

func (e ErrDecode) Error() string {
	return "could not decode file with any of the attempted encodings: " +
		strings.Join(e.Candidates, ", ")
}

func (e ErrEncode) Error() string {
	return fmt.Sprintf("could not encode text as %s: %s", e.Encoding, e.Err)
}
