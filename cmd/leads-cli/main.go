package main

import (
	"capstone-leads/cmd/leads-cli/commands"
	"capstone-leads/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}
