package main

import "shorts-pipeline/cmd"

func main() {
	cmd.Execute()
}
