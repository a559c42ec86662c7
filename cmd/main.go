package main

import cmd "github.com/kjaer/folio/cmd/folio"

func main() {
	cmd.Execute()
}
