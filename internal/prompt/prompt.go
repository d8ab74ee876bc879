// Package prompt asks the user yes/no questions on an interactive terminal.
//
// Answers are read one line at a time. Only "y", "yes", "n", "no" and the
// empty line (which selects the default) are accepted; anything else makes
// the question repeat.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks question on out and reads the answer from in. When force is
// true the question is skipped and Confirm returns true, which is how the /Y
// flag answers every confirmation.
//
// A closed input (EOF) is treated as "no".
func Confirm(in io.Reader, out io.Writer, question string, defaultYes, force bool) (bool, error) {
	if force {
		return true, nil
	}

	def := "no"
	if defaultYes {
		def = "yes"
	}

	// bufio.Scanner handles both LF and CRLF line endings.
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s [yes/no]{default: %s}\n", question, def)

		if !scanner.Scan() {
			return false, scanner.Err()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(out, "Please enter yes or no")
	}
}
