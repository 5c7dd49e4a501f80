package arguments

import "strings"

const (
	doubleQuoteConstant        = `"`
	escapedDoubleQuoteConstant = `\"`
	backslashConstant          = `\`
	escapedBackslashConstant   = `\\`
	tokenSeparatorConstant     = " "
	flagValueSeparatorConstant = " "
)

var quoteEscaper = strings.NewReplacer(backslashConstant, escapedBackslashConstant, doubleQuoteConstant, escapedDoubleQuoteConstant)

// ArgumentList is an ordered sequence of argument tokens owned by a single invocation.
type ArgumentList struct {
	tokens []string
}

// NewArgumentList returns a list seeded with a copy of the supplied arguments.
// A nil slice yields an empty list; the caller's slice is never modified.
func NewArgumentList(initialArguments []string) *ArgumentList {
	duplicatedArguments := make([]string, len(initialArguments))
	copy(duplicatedArguments, initialArguments)
	return &ArgumentList{tokens: duplicatedArguments}
}

// Append adds tokens to the end of the list.
func (argumentList *ArgumentList) Append(tokens ...string) *ArgumentList {
	argumentList.tokens = append(argumentList.tokens, tokens...)
	return argumentList
}

// AppendFlagValue adds a flag and its value as one token, for example `-m "message"`.
func (argumentList *ArgumentList) AppendFlagValue(flag string, value string) *ArgumentList {
	return argumentList.Append(flag + flagValueSeparatorConstant + value)
}

// Tokens returns a copy of the accumulated tokens.
func (argumentList *ArgumentList) Tokens() []string {
	duplicatedTokens := make([]string, len(argumentList.tokens))
	copy(duplicatedTokens, argumentList.tokens)
	return duplicatedTokens
}

// Quote wraps the value in double quotes exactly once.
// Embedded double quotes and backslashes are escaped so the command line splits back to the original value.
func Quote(value string) string {
	return doubleQuoteConstant + quoteEscaper.Replace(value) + doubleQuoteConstant
}

// CombineQuoted quotes every value and joins them with single spaces.
func CombineQuoted(values []string) string {
	quotedValues := make([]string, 0, len(values))
	for _, value := range values {
		quotedValues = append(quotedValues, Quote(value))
	}
	return strings.Join(quotedValues, tokenSeparatorConstant)
}
