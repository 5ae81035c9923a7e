package util

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ReportWarnAndErrors reports errs at warn level if ok, else at error level.
func ReportWarnAndErrors(errs []string, prompt string, ok bool) {
	if ok {
		reportResultMessages(errs, prompt, log.WarnLevel)
	} else {
		reportResultMessages(errs, prompt, log.ErrorLevel)
	}
}

func reportResultMessages(errs []string, prompt string, level log.Level) {
	var fn func(format string, args ...interface{})

	if len(errs) == 0 {
		return
	}

	switch level {
	case log.WarnLevel:
		fn = log.Warnf
	default:
		fn = log.Errorf
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("-", 78))

	for _, err := range errs {
		if err == "" {
			fn("%s", prompt)
			continue
		}
		for _, line := range strings.Split(err, "\n") {
			if prompt == "" {
				fn("%s", line)
			} else {
				fn("%s\t%s", prompt, line)
			}
		}
	}
}
