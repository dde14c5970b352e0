// Command glslcheck compiles and links GLSL programs against the local
// OpenGL driver and reports the driver's logs.
//
//	glslcheck files sprite.vert sprite.frag
//	glslcheck manifest shaders.toml [program...]
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	// GL calls must stay on the thread owning the context
	runtime.LockOSThread()
}

var (
	validate bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "glslcheck",
	Short:         "Compile and link GLSL shader programs offline",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			// build failures are printed in the report
			logrus.SetLevel(logrus.FatalLevel)
		}
	},
}

var filesCmd = &cobra.Command{
	Use:   "files FILE...",
	Short: "Build one program from stage files named by extension",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		progs, err := programsFromFiles(args)
		if err != nil {
			return err
		}
		return run(progs)
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest PATH [PROGRAM...]",
	Short: "Build the programs of a TOML shader manifest",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		progs, err := programsFromManifest(args[0], args[1:])
		if err != nil {
			return err
		}
		return run(progs)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&validate, "validate", false, "Validate programs after linking")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log driver details")
	rootCmd.AddCommand(filesCmd, manifestCmd)
}

func run(progs []program) error {
	ctx, cleanup, err := newHeadlessContext(validate)
	if err != nil {
		return err
	}
	defer cleanup()

	results := check(ctx, progs)
	report(os.Stdout, results)
	if failed(results) > 0 {
		return errors.Errorf("%d of %d programs failed", failed(results), len(results))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glslcheck:", err)
		os.Exit(1)
	}
}
