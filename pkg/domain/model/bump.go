package model

import (
	"regexp"
	"strings"
)

// BumpKind selects which part of a Version is incremented
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"

	// BumpOverride marks a release whose version was given explicitly
	BumpOverride BumpKind = "override"
)

// DefaultSummary is used when the commit message is empty
const DefaultSummary = "New Release"

var (
	// annotationPattern matches "<word>:rest" anywhere in the message. rest
	// stops at the end of the line.
	annotationPattern = regexp.MustCompile(`<([^<>\n]*)>:(.*)`)
	colonPattern      = regexp.MustCompile(`:(.*)`)
)

// Classification is the result of reading a commit message
type Classification struct {
	Kind    BumpKind
	Summary string
}

// Classify reads the bump annotation and the change summary from a commit
// message.
//
//	"<major>: rewrote API"  -> major, "rewrote API"
//	"fix: null pointer"     -> patch, "null pointer"
//	"no colon at all"       -> patch, "no colon at all"
//	""                      -> patch, "New Release"
func Classify(message string) Classification {
	if m := annotationPattern.FindStringSubmatch(message); m != nil {
		return Classification{
			Kind:    toBumpKind(m[1]),
			Summary: strings.TrimPrefix(m[2], " "),
		}
	}

	result := Classification{Kind: BumpPatch, Summary: message}
	if m := colonPattern.FindStringSubmatch(message); m != nil {
		result.Summary = strings.TrimSpace(m[1])
	} else if message == "" {
		result.Summary = DefaultSummary
	}

	return result
}

func toBumpKind(word string) BumpKind {
	switch BumpKind(word) {
	case BumpMajor:
		return BumpMajor
	case BumpMinor:
		return BumpMinor
	default:
		return BumpPatch
	}
}
