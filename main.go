package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// .env only feeds the optional report archive; the results file sink
	// needs no configuration.
	_ = godotenv.Load(".env")

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <datafile>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(flag.Arg(0)))
}

func run(inputPath string) int {
	archive, err := openArchive()
	if err != nil {
		log.WithError(err).Error("report archive unavailable, continuing without it")
		archive = nil
	}
	if archive != nil {
		defer archive.Close()
	}

	if err := processFile(inputPath, resultsFileName, archive); err != nil {
		if errors.Is(err, errNoValidData) {
			log.WithField("input", inputPath).Error(err.Error())
		} else {
			log.Error(err.Error())
		}
		return 1
	}

	fmt.Printf("Results appended to %s\n", resultsFileName)
	return 0
}
