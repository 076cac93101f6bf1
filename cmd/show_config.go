package cmd

import (
	"os"

	"github.com/urfave/cli"
)

// ShowConfig prints the effective generation parameters as YAML, suitable
// for redirecting into a parameter file.
func ShowConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		logger.Error(err)
		return err
	}

	_, err = os.Stdout.Write(data)
	return err
}
