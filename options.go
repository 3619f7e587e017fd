package recode

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identEncoding struct{}
type identOutput struct{}

// WithEncoding specifies the target encoding for Transcode. The name
// must be a member of SupportedEncodings.
func WithEncoding(v string) Option {
	return option.New(identEncoding{}, v)
}

// WithOutput specifies an explicit output path for Transcode. When
// absent, the output path is derived from the input path and the
// target encoding.
func WithOutput(v string) Option {
	return option.New(identOutput{}, v)
}
