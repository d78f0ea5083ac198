package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"ami-publisher/collection"
	"ami-publisher/config"
	"ami-publisher/driver"
	"ami-publisher/driverset"
	"ami-publisher/publisher"
)

func usage(message string) {
	fmt.Fprintln(os.Stderr, message)                                  //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Usage of ami-publisher")                 //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Phases: create, list, publish, cleanup") //nolint:errcheck
	flag.PrintDefaults()
	os.Exit(1)
}

// output is the result document printed to stdout for the create and list
// phases
type output struct {
	Images        map[string]map[string]string            `json:"images"`
	ImagesByGroup map[string]map[string]map[string]string `json:"images-by-group"`
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	configPath := flag.String("c", "", "Path to the YAML configuration file")
	mappingPath := flag.String("m", "", "Path to the config template mapping file")
	phase := flag.String("phase", "", "Phase to run (create, list, publish or cleanup)")
	group := flag.String("group", "", "Only handle images from the given group")
	region := flag.String("region", "", "Override the configured bucket region")
	dryRun := flag.Bool("dry-run", false, "Log what would change without changing anything")

	flag.Parse()

	if *configPath == "" {
		usage("-c flag is required")
	}
	if *phase == "" {
		usage("-phase flag is required")
	}
	validPhase := map[string]bool{"create": true, "list": true, "publish": true, "cleanup": true}
	if !validPhase[*phase] {
		usage(fmt.Sprintf("unknown phase '%s'", *phase))
	}

	c, err := config.Load(*configPath, *mappingPath, *region)
	if err != nil {
		logger.Fatalf("Error loading config: %s", err)
	}

	if _, err := os.Stat(c.Source.Path); os.IsNotExist(err) {
		logger.Fatalf("source image not found at: %s", c.Source.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	identity, err := driver.NewIdentityDriver(sharedWriter, c.Credentials).Identity(ctx)
	if err != nil {
		logger.Fatalf("Error resolving caller identity: %s", err)
	}

	factory := driverset.NewFactory(sharedWriter, c.Credentials, identity)
	if *dryRun {
		logger.Println("dry-run: no resources will be created or changed")
		factory = driverset.NewDryRunFactory(sharedWriter, factory)
	}

	pubContext, err := publisher.NewContext(sharedWriter, c, identity, factory.RegionLister())
	if err != nil {
		logger.Fatalf("Error preparing run: %s", err)
	}

	var results *collection.Result
	switch *phase {
	case "create":
		results, err = publisher.Create(ctx, sharedWriter, pubContext, factory, *group)
	case "list":
		results, err = publisher.List(ctx, sharedWriter, pubContext, factory, *group)
	case "publish":
		err = publisher.Publish(ctx, sharedWriter, pubContext, factory, *group)
	case "cleanup":
		err = publisher.Cleanup(ctx, sharedWriter, pubContext, factory, *group)
	}
	if err != nil {
		logger.Fatal(err)
	}

	if results != nil {
		doc := output{
			Images:        results.ByName(),
			ImagesByGroup: results.ByGroup(),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			logger.Fatalf("writing results: %s", err)
		}
	}

	logger.Printf("Phase %s finished successfully", *phase)
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
