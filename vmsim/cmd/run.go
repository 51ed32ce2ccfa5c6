package cmd

import (
	"fmt"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/mem/vm"
	"github.com/sarchlab/vmsim/mem/vm/addresstranslator"
	"github.com/sarchlab/vmsim/mem/vm/replacement"
	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/trace"
)

func runSimulation(backingPath, tracePath string) error {
	kind, err := replacement.ParseKind(policyName)
	if err != nil {
		return err
	}

	backing, err := mem.OpenBackingStore(
		backingPath, vm.LogicalMemorySize, vm.PageSize)
	if err != nil {
		return err
	}

	stream, err := trace.Open(tracePath)
	if err != nil {
		return err
	}
	defer stream.Close()

	policy := replacement.NewPolicy(kind, vm.NumFrames)
	translator := addresstranslator.MakeBuilder().
		WithBackingStore(backing).
		WithPolicy(policy).
		Build("Translator")

	var recorder datarecording.Recorder
	if record {
		recorder = datarecording.New(recordPath)
	}

	var bar *monitoring.ProgressBar
	var monitor *monitoring.Monitor
	if monitorOn {
		monitor = monitoring.NewMonitor().WithPortNumber(monitorPort)
		if openBrowser {
			monitor = monitor.WithBrowserOpening()
		}

		monitor.RegisterTranslator(translator)
		bar = monitor.CreateProgressBar("Translating "+tracePath, 0)
		monitor.StartServer()
	}

	seq := int64(0)
	for stream.Scan() {
		t, err := translator.Translate(stream.Address())
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Printf("Virtual address: %d Physical address: %d Value: %d\n",
				t.VirtualAddress, t.PhysicalAddress, t.Value)
		}

		if recorder != nil {
			recorder.RecordTranslation(datarecording.TranslationRecord{
				Seq:             seq,
				VirtualAddress:  int64(t.VirtualAddress),
				PhysicalAddress: int64(t.PhysicalAddress),
				Value:           int64(t.Value),
				Outcome:         t.Outcome.String(),
			})
		}

		if bar != nil {
			bar.IncrementFinished(1)
		}

		seq++
	}

	if err := stream.Err(); err != nil {
		return err
	}

	stats := translator.Stats()
	printSummary(stats)

	if recorder != nil {
		recorder.RecordSummary(datarecording.SummaryRecord{
			Policy:         kind.String(),
			TotalAddresses: stats.TotalAddresses,
			TLBHits:        stats.TLBHits,
			PageFaults:     stats.PageFaults,
			TLBHitRate:     stats.TLBHitRate(),
			PageFaultRate:  stats.PageFaultRate(),
		})
		recorder.Flush()
	}

	if monitor != nil && bar != nil {
		monitor.CompleteProgressBar(bar)
	}

	return nil
}

func printSummary(stats addresstranslator.RunStats) {
	fmt.Printf("Number of Translated Addresses = %d\n", stats.TotalAddresses)
	fmt.Printf("Page Faults = %d\n", stats.PageFaults)
	fmt.Printf("Page Fault Rate = %.3f\n", stats.PageFaultRate())
	fmt.Printf("TLB Hits = %d\n", stats.TLBHits)
	fmt.Printf("TLB Hit Rate = %.3f\n", stats.TLBHitRate())
}
