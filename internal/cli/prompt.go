package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

// promptLine reads one trimmed line with a label.
func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptDefault reads a line, falling back to def when empty.
func promptDefault(label, def string) string {
	fmt.Printf("%s [%s]: ", label, def)
	line, _ := stdin.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

// promptPassword reads a password without echoing it.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(data), nil
}
