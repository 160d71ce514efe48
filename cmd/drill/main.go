package main

import (
	"os"

	"github.com/vfg2006/agency-dashboard/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
