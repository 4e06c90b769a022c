package display

import (
	"fmt"
	"os"

	"github.com/snapfix/snapfix/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ____                    _____ _
/ ___| _ __   __ _ _ __ |  ___(_)_  __
\___ \| '_ \ / _`+"`"+` | '_ \| |_  | \ \/ /
 ___) | | | | (_| | |_) |  _| | |>  <
|____/|_| |_|\__,_| .__/|_|   |_/_/\_\
                  |_|
`)
	if term.Enabled() {
		fmt.Fprint(os.Stdout, "\033[0m")
	}
	fmt.Fprintln(os.Stdout)
}
