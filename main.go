package main

import "github.com/docuflow/docuflow-cli/cmd"

func main() {
	cmd.Execute()
}
