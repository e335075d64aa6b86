package main

import "fiveline/cmd"

func main() {
	cmd.Execute()
}
