package main

import "listing-app/cmd"

func main() {
	cmd.Execute()
}
