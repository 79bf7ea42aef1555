package main

import (
	"fmt"
	"os"

	"github.com/hetarchief/aip-services/models/common"
	"github.com/hetarchief/aip-services/util"
	"github.com/hetarchief/aip-services/util/cli"
	"github.com/hetarchief/aip-services/workers"
)

func main() {
	cli.Init()
	opts := cli.ParseOpts()
	if opts.PrintHelp {
		printHelp()
		cli.PrintDefaults()
		os.Exit(0)
	}
	if opts.PidFile != "" {
		guardPidFile(opts.PidFile)
		defer util.DeletePidFile(opts.PidFile)
	}

	ctx := common.NewContext()
	worker, err := workers.NewAIPCreator(ctx)
	if err != nil {
		ctx.Logger.Fatalf("Cannot create worker: %v", err)
	}

	// If anything goes wrong, this panics.
	// Otherwise, it starts handling NSQ messages immediately.
	if err := worker.RegisterAsNsqConsumer(); err != nil {
		ctx.Logger.Fatalf("Cannot register NSQ consumer: %v", err)
	}
	ctx.Logger.Infof("aip_creator listening on topic %s (channel %s)",
		ctx.Config.NsqTopic, ctx.Config.NsqChannel)

	// This channel blocks until we get an interrupt,
	// so our program does not exit without Control-C
	// or other kill signal.
	worker.Wait()
}

func guardPidFile(pidFile string) {
	if util.IsRunningInOtherProcess(pidFile) {
		fmt.Fprintf(os.Stderr, "Another aip_creator instance holds %s, exiting\n", pidFile)
		os.Exit(1)
	}
	if err := util.WritePidFile(pidFile); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot write pid file %s: %v\n", pidFile, err)
		os.Exit(1)
	}
}

func printHelp() {
	message := `
aip_creator listens for SIP-validated events, converts each incoming SIP
into a MediaHaven AIP (mets.xml plus the files of every digital
representation), zips the package under the configured AIP folder and
publishes a completion event for the transport service. Messages are
processed one at a time; a message that fails validation is negatively
acknowledged for redelivery.`
	fmt.Println(message)
	fmt.Println(cli.EnvMessage)
}
