package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/vietanhduong/readbin/pkg/binfile"
	"github.com/vietanhduong/readbin/pkg/elf"
)

func main() {
	cmd := &cobra.Command{
		Use:   "readbin <binary file>",
		Short: "Print the ELF64 header of a binary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	cmd.Flags().AddGoFlagSet(goflag.CommandLine)
	// glog complains on every line until the stdlib flag set is marked
	// as parsed; cobra only parses its own.
	_ = goflag.CommandLine.Parse(nil)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := binfile.Open(path)
	if err != nil {
		return fmt.Errorf("error reading binary: %w", err)
	}
	defer f.Close()

	view, err := elf.ParseHeader64(f.Data())
	if err != nil {
		return fmt.Errorf("failed to parse elf: %w", err)
	}
	glog.V(1).Infof("decoded %s: %d bytes, mapped=%v, zero-copy=%v",
		path, f.Size(), f.Mapped(), view.Borrowed())

	fmt.Print(view.Value().String())
	return nil
}
