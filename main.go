package main

import (
	"fmt"
	"os"

	"get.pme.sh/hosts/cmd"
	"get.pme.sh/hosts/revision"
)

func main() {
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "--version", "-v", "version", "v", "ver":
			fmt.Println(revision.GetVersion())
			os.Exit(0)
		}
	}
	cmd.Execute()
}
