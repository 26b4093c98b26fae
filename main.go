package main

import "github.com/KaramelBytes/iris-cli/cmd"

func main() {
	cmd.Execute()
}
