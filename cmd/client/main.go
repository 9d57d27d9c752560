package main

import "cloudvault/cmd/client/cmd"

func main() {
	cmd.Execute()
}
