// Package tool shells out to the external toolchain (cargo, solana,
// solana-keygen) the CLI drives for builds, keys and deploys.
package tool

import (
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/golt-ecs/golt/pkg/retry"
)

// Runner executes external commands. Swappable for tests.
type Runner interface {
	Run(dir, name string, args ...string) error
}

type execRunner struct {
	log *logrus.Entry
}

// NewRunner returns a Runner that executes commands directly, streaming
// their output to the current process.
func NewRunner() Runner {
	return &execRunner{
		log: logrus.StandardLogger().WithField("type", "cli/tool"),
	}
}

func (r *execRunner) Run(dir, name string, args ...string) error {
	r.log.WithFields(logrus.Fields{
		"command": name,
		"args":    args,
		"dir":     dir,
	}).Debug("running external tool")

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "%s failed", name)
	}
	return nil
}

// RunWithRetry retries transient tool failures (network hiccups during
// deploys, mostly) with capped exponential backoff.
func RunWithRetry(r Runner, attempts uint, dir, name string, args ...string) error {
	_, err := retry.Retry(
		func() error { return r.Run(dir, name, args...) },
		retry.Limit(attempts),
		retry.BinaryExponentialBackoff(time.Second, 30*time.Second),
	)
	return err
}
