package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatsCommandEndToEnd(t *testing.T) {
	input := filepath.Join(t.TempDir(), "articles.csv")
	rows := strings.Join([]string{
		"title,authors,source,url,published,language,sentiment,body",
		`One,Jane,Reuters,https://e/1,2024-01-01T10:00Z,en,0.1,"alpha beta gamma"`,
		`Two,John,AP,https://e/2,2024-01-02T09:00Z,en,0.0,"one two"`,
	}, "\n")
	if err := os.WriteFile(input, []byte(rows), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	outDir := t.TempDir()

	rootCmd.SetArgs([]string{"stats", input, "--outdir", outDir, "--top-n", "5"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	report, err := os.ReadFile(filepath.Join(outDir, "basic_stats_report.md"))
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(report), "- Total articles: 2") {
		t.Fatalf("report wrong:\n%s", report)
	}
	if _, err := os.Stat(filepath.Join(outDir, "articles_with_wordcount.csv")); err != nil {
		t.Fatalf("augmented csv not written: %v", err)
	}
}

func TestStatsCommandMissingInput(t *testing.T) {
	rootCmd.SetArgs([]string{"stats", filepath.Join(t.TempDir(), "nope.csv"), "--outdir", t.TempDir()})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for missing input")
	}
}
