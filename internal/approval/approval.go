package approval

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type Result struct {
	Approved   bool
	UserAction string
}

type Prompt struct {
	Dest     string
	Profiles int
}

func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask confirms overwriting an existing destination. Outside a terminal the
// answer is always no; pass --yes to skip the prompt in scripts.
func Ask(p Prompt) Result {
	if !IsInteractive() {
		return Result{
			Approved:   false,
			UserAction: "auto_deny_non_interactive",
		}
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Destination %s already exists.\n", p.Dest)
	fmt.Fprintf(os.Stderr, "Writing %d hardened profile(s) will overwrite files under it.\n", p.Profiles)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  [o] Overwrite - write hardened profiles")
	fmt.Fprintln(os.Stderr, "  [c] Cancel - leave the destination untouched")
	fmt.Fprintln(os.Stderr, "")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Fprint(os.Stderr, "Your choice [o/c]: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return Result{
				Approved:   false,
				UserAction: "error_reading_input",
			}
		}

		input = strings.TrimSpace(strings.ToLower(input))

		switch input {
		case "o", "overwrite", "yes", "y":
			return Result{
				Approved:   true,
				UserAction: "overwrite",
			}
		case "c", "cancel", "no", "n":
			return Result{
				Approved:   false,
				UserAction: "cancel",
			}
		default:
			fmt.Fprintln(os.Stderr, "Invalid input. Please enter 'o' to overwrite or 'c' to cancel.")
		}
	}
}
