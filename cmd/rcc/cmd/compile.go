package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VVsxmja/rcc/internal/backend"
	"github.com/VVsxmja/rcc/internal/config"
)

var targetConfigPath string

var compileBinaryCmd = &cobra.Command{
	Use:   "compile-binary <file> <output>",
	Short: "Compile a source file to a native object file",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompile(backend.Object),
}

var compileAssemblyCmd = &cobra.Command{
	Use:   "compile-assembly <file> <output>",
	Short: "Compile a source file to native assembly",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompile(backend.Assembly),
}

func init() {
	rootCmd.AddCommand(compileBinaryCmd)
	rootCmd.AddCommand(compileAssemblyCmd)

	for _, c := range []*cobra.Command{compileBinaryCmd, compileAssemblyCmd} {
		c.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline source instead of reading from file")
		c.Flags().StringVar(&targetConfigPath, "target", "", "YAML target configuration (default: host)")
	}
}

func runCompile(ft backend.FileType) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		inputArgs, output := args[:1], args[1]

		b, _, filename, err := buildModule(inputArgs)
		if b != nil {
			defer b.Dispose()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		if err := backend.Verify(b.Module()); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		target, err := loadTarget()
		if err != nil {
			return err
		}

		tm, err := backend.CreateTargetMachine(target)
		if err != nil {
			return err
		}

		if err := backend.WriteToFile(b.Module(), tm, ft, output); err != nil {
			return err
		}
		return nil
	}
}

func loadTarget() (config.Target, error) {
	if targetConfigPath == "" {
		return config.Default(), nil
	}
	t, err := config.Load(targetConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), nil
		}
		return config.Target{}, fmt.Errorf("failed to load target config %s: %w", targetConfigPath, err)
	}
	return t, nil
}
