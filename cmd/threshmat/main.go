// Command threshmat loads a square connectivity matrix from a text file,
// keeps the N largest-weight cells of its strict upper triangle, and writes
// the thresholded matrix back out as tab-delimited text and (optionally) a
// log1p-scaled heat-map image.
//
// Existing output files are never overwritten: reruns skip them silently,
// so a pipeline can be resumed without clobbering earlier results.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/threshmat/matrixio"
	"github.com/katalvlaran/threshmat/render"
	"github.com/katalvlaran/threshmat/threshold"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath string
		figPath string
		noFig   bool
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "threshmat M_FILE N_KEEP",
		Short: "Keep the N largest upper-triangle weights of a connectivity matrix",
		Long: `threshmat reads a whitespace-delimited square matrix from M_FILE, keeps
exactly N_KEEP of the largest-weight cells in its strict upper triangle
(ties at the cutoff are resolved uniformly at random), zeroes everything
else, and writes the result as tab-delimited text plus a log1p-scaled
heat-map image.

Output paths default to <M_FILE base>_thrKeepNNNN.txt/.png and are never
overwritten; rerunning against existing outputs is a no-op.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nKeep, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("N_KEEP must be an integer, got %q", args[1])
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}

			return run(args[0], nKeep, outPath, figPath, noFig, rng)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "path for the thresholded text matrix (default <M_FILE>_thrKeepNNNN.txt)")
	cmd.Flags().StringVar(&figPath, "fig", "", "path for the heat-map image (default <M_FILE>_thrKeepNNNN.png)")
	cmd.Flags().BoolVar(&noFig, "no-fig", false, "skip rendering the heat-map image")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for tie-break randomness (default non-deterministic)")

	return cmd
}

// run composes the collaborators: load → upper-triangle view → threshold →
// save text → render image. All policy (paths, seeding) is resolved by the
// caller; run itself stays deterministic given its arguments.
func run(mFile string, nKeep int, outPath, figPath string, noFig bool, rng *rand.Rand) error {
	log.WithFields(logrus.Fields{"file": mFile, "n_keep": nKeep}).Info("thresholding connectivity matrix")

	m, err := matrixio.Load(mFile)
	if err != nil {
		return err
	}

	triu, err := threshold.UpperTriangle(m)
	if err != nil {
		return err
	}

	opts := threshold.DefaultOptions()
	opts.Rand = rng
	thr, res, err := threshold.Threshold(triu, nKeep, &opts)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"thresh":  res.Thresh,
		"greater": res.Greater,
		"ties":    res.Ties,
	}).Info("cutoff computed")

	if outPath == "" {
		outPath = derivedPath(mFile, nKeep, ".txt")
	}
	wrote, err := matrixio.Save(outPath, thr)
	if err != nil {
		return err
	}
	if wrote {
		log.WithField("path", outPath).Info("wrote thresholded matrix")
	} else {
		log.WithField("path", outPath).Warn("output exists, skipping (never overwritten)")
	}

	if noFig {
		return nil
	}
	if figPath == "" {
		figPath = derivedPath(mFile, nKeep, ".png")
	}
	wrote, err = render.HeatMap(figPath, thr, nil)
	if err != nil {
		return err
	}
	if wrote {
		log.WithField("path", figPath).Info("wrote heat-map image")
	} else {
		log.WithField("path", figPath).Warn("image exists, skipping (never overwritten)")
	}

	return nil
}

// derivedPath turns "data/M.txt" with nKeep=150 into
// "data/M_thrKeep0150<ext>". The keep count is zero-padded to four digits so
// thresholded outputs sort next to each other.
func derivedPath(mFile string, nKeep int, ext string) string {
	base := strings.TrimSuffix(mFile, filepath.Ext(mFile))
	return fmt.Sprintf("%s_thrKeep%04d%s", base, nKeep, ext)
}
