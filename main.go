package main

import "mediarental/cmd"

func main() {
	cmd.Execute()
}
