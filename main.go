package main

import "github.com/KaramelBytes/kata-cli/cmd"

func main() {
	cmd.Execute()
}
