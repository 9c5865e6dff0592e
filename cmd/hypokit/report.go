package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"hypokit/domain/inference"
)

func (a *app) write(report *inference.Report) error {
	if len(report.Extras) == 0 {
		report.Extras = nil
	}
	if a.format == "json" {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeText(a.out, report)
}

func valueOf(v float64) *inference.Value {
	value := inference.Value(v)
	return &value
}

func writeText(w io.Writer, r *inference.Report) error {
	var b strings.Builder
	line := func(key, format string, args ...interface{}) {
		fmt.Fprintf(&b, "%-26s "+format+"\n", append([]interface{}{key}, args...)...)
	}

	line("run", "%s", r.RunID)
	line("analysis", "%s", r.Analysis)
	line("sample sizes", "%v", r.SampleSizes)
	for i, h := range r.SampleHashes {
		line(fmt.Sprintf("sample %d", i+1), "sha256:%s", h.Short())
	}
	line("estimate", "%.6g", r.Estimate)
	line(fmt.Sprintf("%g%% interval", r.ConfidenceLevel*100), "%s", r.Interval)
	if r.NullValue != nil {
		line("null value", "%.6g", *r.NullValue)
	}
	if r.TestStatistic != nil {
		line("test statistic", "%.6g", *r.TestStatistic)
	}
	for _, tail := range inference.Tails {
		accepted, ok := r.Decisions[tail]
		if !ok {
			continue
		}
		verdict := "not accepted"
		if accepted {
			verdict = "accepted"
		}
		if p, ok := r.PValues[tail]; ok {
			line(string(tail)+" tail", "%s (p = %.4g)", verdict, p)
		} else {
			line(string(tail)+" tail", "%s", verdict)
		}
	}
	for _, tail := range inference.Tails {
		if d, ok := r.Power[tail]; ok {
			line(string(tail)+" tail power", "adequate=%t null rejected=%t", d.PowerAdequate, d.NullRejected)
		}
	}

	keys := make([]string, 0, len(r.Extras))
	for k := range r.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		line(strings.ReplaceAll(k, "_", " "), "%.6g", r.Extras[k])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
