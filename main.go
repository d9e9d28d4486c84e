package main

import "github.com/galeworks/windreport/cmd"

func main() {
	cmd.Execute()
}
