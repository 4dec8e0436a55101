package main

import "fburn/cmd"

func main() {
	cmd.Execute()
}
