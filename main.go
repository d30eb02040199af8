package main

import "github.com/kashguard/go-btc-identity/cmd"

func main() {
	cmd.Execute()
}
