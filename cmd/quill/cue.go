package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/quill"
)

func newCueCmd(a *app) *cobra.Command {
	var (
		sources   []string
		maxFrames int
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "cue <script.yaml>",
		Short: "Run an audio cue script against silent sources",
		Long: `Run an audio cue script one step per frame against silent sources and
print the final state of every source.

Sources are declared with --source name[:tag]. Sources sharing a tag stop
each other when one of them starts playing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("quill: read cue script: %w", err)
			}
			runner, err := quill.LoadCueScript(data)
			if err != nil {
				return err
			}

			bank := quill.NewAudioBank()
			var vs []*virtualSource
			for _, spec := range sources {
				name, tag, err := parseSourceSpec(spec)
				if err != nil {
					return err
				}
				v := newVirtualSource(name)
				bank.Add(name, tag, v)
				vs = append(vs, v)
			}

			sched := a.newScheduler()
			runner.Attach(quill.NewDispatcher(sched, bank))

			out := cmd.OutOrStdout()
			runner.OnText = func(tokens []quill.Token) {
				for _, tok := range tokens {
					if tok.Kind == quill.TokenWords {
						fmt.Fprint(out, tok.Text())
					}
				}
				fmt.Fprintln(out)
			}

			dt := float32(1.0 / float64(a.cfg.Scheduler.TPS))
			frame := 0
			for ; !runner.Done(); frame++ {
				if frame >= maxFrames {
					return fmt.Errorf("quill: cue script still running after %d frames", maxFrames)
				}
				runner.Step()
				sched.Advance(dt)
				if trace {
					fmt.Fprintf(out, "frame %d: %d tween(s)\n", frame, sched.Len())
				}
			}

			fmt.Fprintf(out, "finished after %d frame(s)\n", frame)
			for _, v := range vs {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringArrayVarP(&sources, "source", "s", nil, "declare a source as name[:tag] (repeatable)")
	f.IntVar(&maxFrames, "max-frames", 36000, "give up after this many frames")
	f.BoolVar(&trace, "trace", false, "print the active tween count every frame")
	f.Int("tps", 0, "ticks per second used to advance tweens")
	f.Bool("debug", false, "log per-tick scheduler stats")
	f.Bool("auto-register", true, "register unknown tween targets on first use")
	_ = a.v.BindPFlag("scheduler.tps", f.Lookup("tps"))
	_ = a.v.BindPFlag("scheduler.debug", f.Lookup("debug"))
	_ = a.v.BindPFlag("scheduler.auto_register", f.Lookup("auto-register"))
	return cmd
}
