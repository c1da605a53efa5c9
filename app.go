package main

import (
	"os"
	"strings"
	"time"

	"ring-queue/ring"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	cli "github.com/jawher/mow.cli"
	"github.com/sirupsen/logrus"
)

const appDescription = "Demonstrates a resizable circular FIFO queue by walking it through scripted scenarios."

func main() {
	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "ring-queue-demo"
	}
	app := cli.App(appName, appDescription)

	capacity := app.Int(cli.IntOpt{
		Name:   "capacity",
		Value:  ring.DefaultCapacity,
		Desc:   "Initial capacity of the demonstration queues.",
		EnvVar: "QUEUE_CAPACITY",
	})
	scenarioNames := app.String(cli.StringOpt{
		Name:   "scenarios",
		Value:  "all",
		Desc:   "Comma separated scenarios to run: " + strings.Join(scenarioList(), ", "),
		EnvVar: "SCENARIOS",
	})
	stepDelay := app.Int(cli.IntOpt{
		Name:   "step_delay",
		Value:  0,
		Desc:   "Pause between demonstration steps (in milliseconds).",
		EnvVar: "STEP_DELAY_MS",
	})
	logLevel := app.String(cli.StringOpt{
		Name:   "logLevel",
		Value:  "INFO",
		Desc:   "Logging level (DEBUG, INFO, WARN, ERROR)",
		EnvVar: "LOG_LEVEL",
	})

	log := logrus.New()

	app.Action = func() {
		if level, err := logrus.ParseLevel(*logLevel); err != nil {
			log.WithError(err).Warn("unknown log level, staying on INFO")
		} else {
			log.SetLevel(level)
		}

		runID := uuid.New().String()
		log.WithFields(logrus.Fields{
			"run_id":    runID,
			"capacity":  *capacity,
			"scenarios": *scenarioNames,
		}).Infof("[Startup] %s is starting", appName)

		d := &demo{
			log:      log.WithField("run_id", runID),
			clock:    clock.New(),
			delay:    time.Duration(*stepDelay) * time.Millisecond,
			capacity: *capacity,
		}

		if err := d.run(strings.Split(*scenarioNames, ",")); err != nil {
			log.WithError(err).Fatal("demonstration failed")
		}
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
