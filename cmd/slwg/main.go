package main

import "shoppinglist-card/internal/cli"

func main() {
	cli.Execute()
}
