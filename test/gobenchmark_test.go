package runner_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leonardinius/treelox/cmd"
)

func BenchmarkAll(b *testing.B) {
	benchmarks, err := filepath.Glob(filepath.Join(testDir, "benchmark", "*.lox"))
	if err != nil {
		b.Fatalf("Failed to list benchmarks: %v", err)
	}
	if len(benchmarks) == 0 {
		b.Fatalf("No benchmarks found in %s", testDir)
	}

	for _, bench := range benchmarks {
		b.Run(filepath.Base(bench), func(b *testing.B) {
			runBenchN(b, bench)
		})
	}
}

func runBenchN(b *testing.B, bench string) {
	b.Helper()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		runBench(b, bench)
	}
}

func runBench(b *testing.B, bench string) {
	b.Helper()
	stderr := new(strings.Builder)
	app := cmd.NewLoxApp(cmd.WithStdout(io.Discard), cmd.WithStderr(stderr))

	if exitCode := app.Main([]string{bench}); exitCode != cmd.ExitOK {
		b.Errorf("%s exited with code %v and error %v", bench, exitCode, strings.TrimSpace(stderr.String()))
	}
}
