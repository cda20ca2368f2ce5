package utils

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
)

func PrintSuccess(format string, args ...any) {
	fmt.Printf(" %s %s\n", text.FgHiGreen.Sprint("✔"), fmt.Sprintf(format, args...))
}

func PrintError(format string, args ...any) {
	fmt.Printf(" %s %s\n", text.FgHiRed.Sprint("✖"), text.FgRed.Sprint(fmt.Sprintf(format, args...)))
}
