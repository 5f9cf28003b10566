package main

import "github.com/soundvault/soundvault-backend/cmd"

func main() {
	cmd.Execute()
}
