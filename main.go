package main

import "github.com/fieldloom/datadoc/cmd"

func main() {
	cmd.Execute()
}
