package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
)

// requestEcho repeats the resolved inputs in JSON reports.
type requestEcho struct {
	Requests        []int         `json:"requests"`
	InitialPosition int           `json:"initial_position"`
	Algorithm       sim.Algorithm `json:"algorithm,omitempty"`
	DiskSize        int           `json:"disk_size"`
	Direction       sim.Direction `json:"direction"`
	NStep           int           `json:"n_step,omitempty"`
}

type simulationReport struct {
	Request            requestEcho            `json:"request"`
	Result             *sim.Result            `json:"result"`
	PerformanceMetrics sim.PerformanceMetrics `json:"performance_metrics"`
	Trace              *trace.TraceSummary    `json:"trace_summary,omitempty"`
	Steps              []trace.SeekRecord     `json:"steps,omitempty"`
}

type comparisonReport struct {
	Request requestEcho `json:"request"`
	*sim.Comparison
}

// echo reports the workload as the scheduler accepted it.
func echo(s *sim.Scheduler, in *simInput) requestEcho {
	e := requestEcho{
		Requests:        s.Requests(),
		InitialPosition: s.InitialPosition(),
		Algorithm:       in.Algorithm,
		DiskSize:        s.DiskSize(),
		Direction:       in.Direction,
	}
	if in.Algorithm == "" || in.Algorithm == sim.AlgorithmNStepSCAN {
		e.NStep = in.NStep
	}
	return e
}

func validateFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q; valid: text, json", format)
	}
	return nil
}

// buildTrace replays the seek operations of r into a SeekTrace.
func buildTrace(r *sim.Result, diskSize int) *trace.SeekTrace {
	st := trace.NewSeekTrace(diskSize)
	for _, op := range r.SeekOperations {
		st.Record(op.From, op.To)
	}
	return st
}

// runSimulation runs one algorithm and writes the result to w.
func runSimulation(w io.Writer, in *simInput, format string, level trace.TraceLevel) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	s, err := sim.NewScheduler(in.Requests, in.InitialPosition, in.DiskSize)
	if err != nil {
		return err
	}
	r, err := s.Simulate(in.Algorithm, in.Direction, in.NStep)
	if err != nil {
		return err
	}
	metrics := sim.ComputePerformanceMetrics(r, in.DiskSize)

	var (
		st      *trace.SeekTrace
		summary *trace.TraceSummary
	)
	if level == trace.TraceLevelSummary || level == trace.TraceLevelSteps {
		st = buildTrace(r, in.DiskSize)
		summary = trace.Summarize(st)
	}

	if format == "json" {
		report := simulationReport{Request: echo(s, in), Result: r, PerformanceMetrics: metrics, Trace: summary}
		if level == trace.TraceLevelSteps {
			report.Steps = st.Records
		}
		return writeJSON(w, report)
	}

	fmt.Fprintln(w, "=== Simulation Result ===")
	fmt.Fprintf(w, "Algorithm:         %s\n", r.Algorithm)
	fmt.Fprintf(w, "Sequence:          %s\n", formatPath(r.InitialPosition, r.Sequence))
	fmt.Fprintf(w, "Total seek time:   %d\n", r.TotalSeekTime)
	fmt.Fprintf(w, "Average seek time: %.2f\n", r.AverageSeekTime)
	fmt.Fprintf(w, "Requests:          %d\n", r.TotalRequests)
	fmt.Fprintln(w, "=== Performance Metrics ===")
	fmt.Fprintf(w, "Efficiency:        %.2f%%\n", metrics.Efficiency)
	fmt.Fprintf(w, "Throughput:        %.2f\n", metrics.Throughput)
	fmt.Fprintf(w, "Fairness index:    %.2f\n", metrics.FairnessIndex)
	fmt.Fprintf(w, "Max seek distance: %d\n", metrics.MaxSeekDistance)

	if summary != nil {
		fmt.Fprintln(w, "=== Seek Trace ===")
		fmt.Fprintf(w, "Reversals: %d, wraps: %d, edge visits: %d, mean distance: %.2f\n",
			summary.Reversals, summary.Wraps, summary.EdgeVisits, summary.MeanDistance)
	}
	if level == trace.TraceLevelSteps {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Step", "From", "To", "Distance", "Edge"})
		for _, rec := range st.Records {
			edge := ""
			if rec.AtEdge {
				edge = "*"
			}
			table.Append([]string{strconv.Itoa(rec.Step), strconv.Itoa(rec.From), strconv.Itoa(rec.To), strconv.Itoa(rec.Distance), edge})
		}
		table.SetFooter([]string{"", "", "", strconv.Itoa(summary.TotalDistance), ""})
		table.Render()
	}
	return nil
}

// runComparison runs every algorithm over the workload and writes a ranking.
func runComparison(w io.Writer, in *simInput, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	s, err := sim.NewScheduler(in.Requests, in.InitialPosition, in.DiskSize)
	if err != nil {
		return err
	}
	c, err := s.Compare(in.Direction, in.NStep)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(w, comparisonReport{Request: echo(s, in), Comparison: c})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Total Seek", "Avg Seek", "Efficiency", "Throughput", "Fairness", "Max Seek"})
	for _, e := range c.Entries {
		table.Append([]string{
			string(e.Result.Algorithm),
			strconv.Itoa(e.Result.TotalSeekTime),
			fmt.Sprintf("%.2f", e.Result.AverageSeekTime),
			fmt.Sprintf("%.2f%%", e.Metrics.Efficiency),
			fmt.Sprintf("%.2f", e.Metrics.Throughput),
			fmt.Sprintf("%.2f", e.Metrics.FairnessIndex),
			strconv.Itoa(e.Metrics.MaxSeekDistance),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Best: %s (%d), worst total: %d, average total: %.2f\n",
		c.BestAlgorithm, c.BestTotalSeekTime, c.WorstTotalSeekTime, c.AverageTotalSeekTime)
	return nil
}

// listAlgorithms writes the algorithm catalog.
func listAlgorithms(w io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(w, map[string][]sim.AlgorithmInfo{"algorithms": sim.Catalog()})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Full Name", "Direction", "Description"})
	table.SetAutoWrapText(false)
	for _, info := range sim.Catalog() {
		dir := "no"
		if info.RequiresDirection {
			dir = "yes"
		}
		table.Append([]string{string(info.Name), info.FullName, dir, info.Description})
	}
	table.Render()
	return nil
}

// formatPath renders the head path as "53 -> 65 -> 67".
func formatPath(start int, seq []int) string {
	parts := make([]string, 0, len(seq)+1)
	parts = append(parts, strconv.Itoa(start))
	for _, t := range seq {
		parts = append(parts, strconv.Itoa(t))
	}
	return strings.Join(parts, " -> ")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
