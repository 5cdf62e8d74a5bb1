// Command minfas computes an approximate minimum feedback arc set for a
// CSV-encoded trade graph and writes the resulting DAG and partial order.
//
// Grounded on ja7ad-consumption/cmd/consumption/main.go for the cobra root
// command + pflag-bound options shape, and on
// newbthenewbd-btrfs-rec/cmd/btrfs-mount/main.go for driving sirupsen/logrus
// as the run logger.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcweave/minfas/csvio"
	"github.com/arcweave/minfas/fas"
)

type options struct {
	weighted bool
	quiet    bool
}

func main() {
	var o options
	log := logrus.New()

	root := &cobra.Command{
		Use:   "minfas <input.csv> <output-postfix>",
		Short: "Approximate minimum feedback arc set over a CSV trade graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log, o, args[0], args[1])
		},
		SilenceUsage: true,
	}
	root.Flags().BoolVar(&o.weighted, "weighted", false, "use weighted scoring (per-destination normalized in-mass)")
	root.Flags().BoolVar(&o.quiet, "quiet", false, "suppress the run summary")

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("minfas: run failed")
		os.Exit(exitCode(err))
	}
}

func run(log *logrus.Logger, o options, inputPath, outputPostfix string) error {
	start := time.Now()

	log.WithField("path", inputPath).Info("loading graph")
	g, err := csvio.Load(inputPath)
	if err != nil {
		return fmt.Errorf("minfas: load: %w", err)
	}
	log.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Info("graph loaded")

	log.WithField("weighted", o.weighted).Info("eliminating")
	res, err := fas.Run(g, fas.WithWeighted(o.weighted))
	if err != nil {
		return fmt.Errorf("minfas: eliminate: %w", err)
	}
	log.WithFields(logrus.Fields{
		"violators":         len(res.Violators),
		"violator_fraction": res.ViolatorFraction,
	}).Info("violators extracted")

	dagPath := outputPostfix + "_dag.csv"
	partialPath := outputPostfix + "_partial.csv"

	if err := csvio.WriteDAG(dagPath, g, res.Violators); err != nil {
		return fmt.Errorf("minfas: write dag: %w", err)
	}
	if err := csvio.WritePartialOrder(partialPath, res.Order); err != nil {
		return fmt.Errorf("minfas: write partial order: %w", err)
	}
	log.WithFields(logrus.Fields{
		"dag":     dagPath,
		"partial": partialPath,
		"elapsed": time.Since(start),
	}).Info("wrote outputs")

	if !o.quiet {
		fmt.Printf("vertices=%d edges=%d violators=%d (%.2f%% of arcs, %.2f%% of weight)\n",
			g.VertexCount(), g.EdgeCount(), len(res.Violators),
			res.ViolatorFraction*100, res.ViolatorWeightFraction*100)
	}

	return nil
}

// exitCode maps a core-level error kind to a non-zero process exit status;
// anything else (adapter I/O failures included) exits 1.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fas.ErrDegenerateGraph):
		return 2
	case errors.Is(err, fas.ErrInternalInconsistency):
		return 3
	default:
		return 1
	}
}
