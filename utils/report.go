package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawCascadeReport displays every teardown step outcome, failed steps last.
func DrawCascadeReport(report *model.CascadeReport) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🧹  TEARDOWN REPORT"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Step", "Resource", "Outcome"})

	for _, step := range report.Succeeded {
		tw.AppendRow(table.Row{step.Action, step.Resource, text.FgHiGreen.Sprint("ok")})
	}
	for _, step := range report.Failed {
		tw.AppendRow(table.Row{step.Action, step.Resource, text.FgHiRed.Sprint(step.Err.Error())})
	}

	tw.Render()

	if len(report.Failed) > 0 {
		PrintError("%d of %d steps failed", len(report.Failed), len(report.Failed)+len(report.Succeeded))
		return
	}
	PrintSuccess("All %d steps succeeded", len(report.Succeeded))
}
