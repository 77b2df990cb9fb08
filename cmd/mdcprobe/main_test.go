package main

import (
	"bytes"
	"strings"
	"testing"
)

// table parses tabwriter output into its rows of fields, skipping
// comment lines.
func table(s string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	return rows
}

func levelsMap(t *testing.T, out string) map[string]string {
	t.Helper()
	m := map[string]string{}
	for _, r := range table(out) {
		if len(r) != 2 {
			t.Fatalf("malformed row %q", r)
		}
		m[r[0]] = r[1]
	}
	return m
}

func TestLevels_SlowestIntra(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"levels", "-preset", "MRS", "-slice", "I", "-q", "100", "-sb", "128"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v (stderr %q)", err, stderr.String())
	}
	m := levelsMap(t, stdout.String())
	want := map[string]string{
		"PartitionContexts":        "20",
		"InterpolationSearchLevel": "2",
		"MDS0Level":                "2",
		"TxMode":                   "2",
		"NSQLevel":                 "1",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
	if _, ok := m["UseRefFrameMVs"]; ok {
		t.Error("zero level printed without -all")
	}
}

func TestLevels_AllAndOverride(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"levels", "-all", "-preset", "M8", "-slice", "I", "-o", "NICLevel=9"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	m := levelsMap(t, stdout.String())
	if len(m) != 42 {
		t.Errorf("printed %d features, want 42", len(m))
	}
	if m["NICLevel"] != "9" {
		t.Errorf("NICLevel = %q, want overridden 9", m["NICLevel"])
	}
}

func TestLadder(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"ladder", "-slice", "I", "PartitionContexts"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	rows := table(stdout.String())
	if len(rows) != 17 {
		t.Fatalf("rows = %d, want header plus 16 presets", len(rows))
	}
	if first := rows[1]; first[0] != "MRS" || first[1] != "20" {
		t.Errorf("first row = %v, want MRS 20", first)
	}
	if last := rows[16]; last[0] != "M13" || last[1] != "4" {
		t.Errorf("last row = %v, want M13 4", last)
	}
}

func TestRunSequence(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"run", "-n", "4", "-tiles", "2", "-workers", "3", "-preset", "M10"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v (stderr %q)", err, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "tasks: 16") {
		t.Errorf("output %q lacks the task count", out)
	}
	rows := table(strings.TrimSuffix(strings.TrimSpace(out), "tasks: 16"))
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want header plus 4 pictures", len(rows))
	}
	if rows[1][1] != "I" || rows[1][2] != "invalid" {
		t.Errorf("key frame row = %v", rows[1])
	}
	if rows[2][1] != "P" || rows[2][2] != "low" {
		t.Errorf("inter row = %v", rows[2])
	}
}

func TestRunSequence_Verbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"run", "-n", "2", "-v"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(stderr.String(), "picture configured"); got != 2 {
		t.Errorf("logged %d pictures, want 2:\n%s", got, stderr.String())
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no_command", nil, "missing command"},
		{"unknown_command", []string{"encode"}, "unknown command"},
		{"bad_preset", []string{"levels", "-preset", "M14"}, "unknown preset"},
		{"bad_slice", []string{"levels", "-slice", "X"}, "unknown slice type"},
		{"bad_override", []string{"levels", "-o", "NICLevel"}, "feature=level"},
		{"unknown_feature", []string{"ladder", "Nope"}, "unknown feature"},
		{"ladder_no_feature", []string{"ladder"}, "exactly one feature"},
		{"no_pictures", []string{"run", "-n", "0"}, "at least one picture"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"help"}, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "mdcprobe levels") {
		t.Errorf("usage not printed: %q", stdout.String())
	}
}
