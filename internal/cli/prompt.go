package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

// promptString asks for a value, showing the current one as the default.
// An empty answer keeps the current value.
func promptString(reader *bufio.Reader, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptFloat asks for a numeric value. An empty answer keeps the current
// value; an unparseable one is asked again.
func promptFloat(reader *bufio.Reader, label string, current *float64) *float64 {
	for {
		if current != nil {
			fmt.Printf("%s [%.2f]: ", label, *current)
		} else {
			fmt.Printf("%s: ", label)
		}
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return current
		}
		v, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Println("  Error: enter a number")
			continue
		}
		return &v
	}
}

// promptDate asks for a date in YYYY-MM-DD form. An empty answer keeps the
// current value.
func promptDate(reader *bufio.Reader, label string, current *time.Time) *time.Time {
	for {
		if current != nil {
			fmt.Printf("%s [%s]: ", label, current.Format("2006-01-02"))
		} else {
			fmt.Printf("%s (YYYY-MM-DD): ", label)
		}
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return current
		}
		t, err := time.Parse("2006-01-02", input)
		if err != nil {
			fmt.Println("  Error: enter a date as YYYY-MM-DD")
			continue
		}
		return &t
	}
}

// promptSecret reads a value without echoing it. Falls back to plain line
// input when stdin is not a terminal (e.g. piped setup scripts).
func promptSecret(label string) (string, error) {
	fmt.Printf("%s: ", label)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(input), nil
	}

	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// promptConfirm asks a yes/no question; only an explicit yes returns true.
func promptConfirm(reader *bufio.Reader, label string) bool {
	fmt.Printf("%s [y/N]: ", label)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
