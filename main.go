package main

import "github.com/statloom/newsstats-cli/cmd"

func main() {
	cmd.Execute()
}
