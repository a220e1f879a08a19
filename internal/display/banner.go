package display

import (
	"fmt"
	"os"

	"github.com/backmassage/pdfbatch/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  ____  _____ ____        _       _
|  _ \|  _ \|  ___| __ )  __ _| |_ ___| |__
| |_) | | | | |_  |  _ \ / _`+"`"+` | __/ __| '_ \
|  __/| |_| |  _| | |_) | (_| | || (__| | | |
|_|   |____/|_|   |____/ \__,_|\__\___|_| |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
