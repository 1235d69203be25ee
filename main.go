package main

import "serverbook/cmd"

func main() {
	cmd.Execute()
}
