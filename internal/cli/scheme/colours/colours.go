package colours

import "github.com/fatih/color"

// Color scheme for the CLI
var (
	Title   = color.New(color.FgYellow, color.Bold)
	Heading = color.New(color.FgHiYellow, color.Bold, color.Underline)
	Body    = color.New(color.FgWhite)
	Muted   = color.New(color.FgHiBlack)
	Current = color.New(color.FgBlack, color.BgYellow, color.Bold)
	Spent   = color.New(color.FgHiBlack, color.CrossedOut)
	Answer  = color.New(color.FgHiYellow, color.BgRed, color.Bold)
	Prompt  = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Success = color.New(color.FgGreen)
	Info    = color.New(color.FgBlue)
	Warning = color.New(color.FgYellow)
)
