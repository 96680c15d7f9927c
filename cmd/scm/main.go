package main

import "github.com/fekuna/omnipos-supplychain-service/internal/cmd"

func main() {
	cmd.Execute()
}
