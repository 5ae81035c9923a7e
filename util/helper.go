package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/git-l10n/pocat/flag"
	"github.com/mattn/go-isatty"
)

// Exist check if path is exist.
func Exist(name string) bool {
	if _, err := os.Stat(name); err == nil {
		return true
	}
	return false
}

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// GetUserInput reads user input from stdin.
// Prompt is written to stderr so stdout remains clean for redirects.
func GetUserInput(prompt, defaultValue string) string {
	fmt.Fprint(os.Stderr, prompt)

	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(text)

	if text == "" {
		return defaultValue
	}
	return text
}

// AnswerIsTrue indicates answer is a true value
func AnswerIsTrue(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "y" ||
		answer == "yes" ||
		answer == "t" ||
		answer == "true" ||
		answer == "on" ||
		answer == "1" {
		return true
	}
	return false
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// ConfirmOverwrite asks before name is overwritten. Without a terminal, or
// with --yes, it agrees.
func ConfirmOverwrite(name string) bool {
	if flag.AssumeYes() || !isInteractive() {
		return true
	}
	answer := GetUserInput(fmt.Sprintf("overwrite %s? [y/N] ", name), "n")
	return AnswerIsTrue(answer)
}
