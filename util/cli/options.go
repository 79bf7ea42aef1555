package cli

import (
	"flag"
)

type Options struct {
	PidFile   string
	PrintHelp bool
}

var opts = Options{}

var EnvMessage = `This requires the following environment vars:

AIP_CONFIG_DIR - Path to the directory containing the .env settings file.

AIP_SERVICES_CONFIG - Name of the configuration to load. For example:
    test - Loads .env.test from AIP_CONFIG_DIR
    prod - Loads .env.prod from AIP_CONFIG_DIR
`

func Init() {
	flag.StringVar(&opts.PidFile, "pidfile", "", "Path to pid file. If set, the process refuses to start when another instance holds the file.")
	flag.BoolVar(&opts.PrintHelp, "help", false, "Print help message")
}

func ParseOpts() Options {
	flag.Parse()
	return opts
}

func PrintDefaults() {
	flag.PrintDefaults()
}
