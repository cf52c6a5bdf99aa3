package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/eln-tools/labfolder-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
