package po

import (
	"regexp"
	"strings"
)

var (
	reTrailingQuote = regexp.MustCompile(`"\s*$`)
	reLeadingQuote  = regexp.MustCompile(`^\s*"`)
)

// Kind classifies a parsed block.
type Kind int

// Block kinds.
const (
	KindEntry Kind = iota
	KindHeader
	KindObsolete
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindObsolete:
		return "obsolete"
	default:
		return "entry"
	}
}

type parseState int

const (
	stateNone parseState = iota
	stateMsgID
	stateMsgStr
	stateComment
)

// ParseEntry builds an Entry from the lines of one block.
//
// Continuation lines of msgid and msgstr are joined with "\n". Lines that
// are neither directives, comments nor continuations are ignored.
func ParseEntry(lines []string) *Entry {
	var (
		e     = &Entry{}
		state = stateNone
	)

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "msgid"):
			state = stateMsgID
			e.msgid = Some(directiveValue(line, "msgid \""))
		case strings.HasPrefix(line, "msgstr"):
			state = stateMsgStr
			e.msgstr = Some(directiveValue(line, "msgstr \""))
		case strings.HasPrefix(line, "#"):
			state = stateComment
			e.comments = append(e.comments, strings.TrimRight(line, "\r\n"))
		default:
			switch state {
			case stateMsgID:
				e.msgid.Value += "\n" + continuationValue(line)
			case stateMsgStr:
				e.msgstr.Value += "\n" + continuationValue(line)
			}
		}
	}
	return e
}

// Classify returns the kind of block e was parsed from.
func Classify(e *Entry) Kind {
	switch {
	case !e.HasMsgID():
		return KindObsolete
	case e.IsHeader():
		return KindHeader
	default:
		return KindEntry
	}
}

func directiveValue(line, prefix string) string {
	return reTrailingQuote.ReplaceAllString(strings.TrimPrefix(line, prefix), "")
}

func continuationValue(line string) string {
	return reTrailingQuote.ReplaceAllString(reLeadingQuote.ReplaceAllString(line, ""), "")
}
