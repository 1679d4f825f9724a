package main

import (
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sarchlab/rxprog/emu"
	"github.com/sarchlab/rxprog/insts"
)

func newDisasmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disasm FILE",
		Short: "Print the disassembly of the program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(cmd, opts, args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), prog.String())
			return err
		},
	}
}

func newMixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mix FILE",
		Short: "Compare the instruction mix with the opcode table frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(cmd, opts, args[0])
			if err != nil {
				return err
			}

			mix := insts.Mix(prog)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetTitle(fmt.Sprintf("Instruction mix (%d instructions)", mix.Total()))
			t.AppendHeader(table.Row{"Op", "Opcodes", "Count", "Observed", "Expected"})
			for op := insts.Op(0); op < insts.NumOps; op++ {
				if op.Frequency() == 0 && mix.Count(op) == 0 {
					continue
				}
				t.AppendRow(table.Row{
					op.String(),
					op.Frequency(),
					mix.Count(op),
					fmt.Sprintf("%6.2f%%", 100*mix.Share(op)),
					fmt.Sprintf("%6.2f%%", 100*op.ExpectedShare()),
				})
			}
			t.AppendFooter(table.Row{"Total", 256, mix.Total(), "", ""})
			t.Render()

			return nil
		},
	}
}

func newBindCmd(opts *options) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bind FILE",
		Short: "Run the program through profiling handlers and report scratchpad traffic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := emu.DefaultScratchpadConfig()
			if configPath != "" {
				var err error
				config, err = emu.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid scratchpad config: %w", err)
			}

			prog, err := loadProgram(cmd, opts, args[0])
			if err != nil {
				return err
			}

			dispatch := emu.NewDispatchTable()
			profile := &emu.TierProfile{}
			profile.Register(dispatch)

			machine := emu.NewMachine(emu.WithScratchpad(emu.NewScratchpad(config)))
			dispatch.Bind(prog).Run(machine)

			slog.Debug("program executed",
				slog.Uint64("instructions", machine.InstructionCount()),
				slog.Uint64("errors", profile.Errors),
			)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetTitle("Scratchpad traffic")
			t.AppendHeader(table.Row{"Tier", "Size", "Reads", "Writes"})
			for _, tier := range []insts.Tier{insts.TierL1, insts.TierL2, insts.TierL3} {
				t.AppendRow(table.Row{
					tier.String(),
					machine.Scratchpad.Mask(tier) + 8,
					profile.Reads[tier],
					profile.Writes[tier],
				})
			}
			t.Render()

			fmt.Fprintf(cmd.OutOrStdout(), "Instructions executed: %d\n", machine.InstructionCount())

			if profile.Errors > 0 {
				return fmt.Errorf("%d scratchpad accesses failed", profile.Errors)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to scratchpad configuration JSON file")

	return cmd
}
