package main

import (
	"os"

	"github.com/ayoisaiah/moodlift/app"
	"github.com/ayoisaiah/moodlift/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
