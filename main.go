package main

import "secassist/cmd"

func main() {
	cmd.Execute()
}
