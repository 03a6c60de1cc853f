// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"strings"
)

var (
	errNotWavFile  = errors.New("source file must be a WAV file")
	errNoExtension = errors.New("source file has no extension; expected .wav")
	errBareASTName = errors.New("output filename cannot be just the .ast extension")
)

// defaultOutputName swaps the input's .wav/.wave extension
// (case-insensitive) for .ast.
func defaultOutputName(input string) (string, error) {
	lower := strings.ToLower(input)
	switch {
	case strings.HasSuffix(lower, ".wav"):
		return input[:len(input)-4] + ".ast", nil
	case strings.HasSuffix(lower, ".wave"):
		return input[:len(input)-5] + ".ast", nil
	case strings.Contains(input, "."):
		return "", errNotWavFile
	default:
		return "", errNoExtension
	}
}

// isValidOutputName rejects names carrying characters the reference tool
// refuses: shell globs, quotes, redirections, and a drive-letter colon
// appearing after the last path separator.
func isValidOutputName(name string) bool {
	if strings.ContainsAny(name, `*?"<>|`) {
		return false
	}
	sep := strings.LastIndexAny(name, `/\`)
	colon := strings.LastIndex(name, ":")
	return colon <= sep
}

// ensureASTExtension appends .ast unless the name already ends with it
// (case-insensitive). A name that is nothing but the extension is rejected.
func ensureASTExtension(name string) (string, error) {
	if len(name) < 4 || !strings.EqualFold(name[len(name)-4:], ".ast") {
		name += ".ast"
	}
	if strings.EqualFold(name, ".ast") {
		return "", errBareASTName
	}
	return name, nil
}
