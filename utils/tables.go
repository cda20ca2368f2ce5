package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/elC0mpa/lfr-cli/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawInstanceTable displays one instance snapshot.
func DrawInstanceTable(details *model.InstanceDetails) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🖥  INSTANCE"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"Name", details.Name},
		{"ARN", details.ARN},
		{"Zone", details.Zone},
		{"Blueprint", details.BlueprintID},
		{"Bundle", details.BundleID},
		{"State", details.State},
		{"Public IP", details.PublicIP},
		{"Created", details.CreatedAt.Format(time.RFC3339)},
	})
	tw.Render()
}

// DrawCredentialsTable displays a freshly created account and its one-time
// password. This is the only place the password is surfaced.
func DrawCredentialsTable(credentials *model.Credentials) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 👤  IDENTITY"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleRounded)
	tw.AppendRows([]table.Row{
		{"User", credentials.Details.UserName},
		{"User ID", credentials.Details.UserID},
		{"ARN", credentials.Details.ARN},
		{"Created", credentials.Details.CreateDate.Format(time.RFC3339)},
		{"One-time password", text.FgHiYellow.Sprint(credentials.OneTimePassword)},
	})
	tw.Render()

	fmt.Printf(" %s\n", text.FgYellow.Sprint("Password reset is required on first login."))
}
