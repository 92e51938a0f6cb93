// SPDX-License-Identifier: MIT

package revenue_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvrail/revenue"
)

func benchmarkFork(b *testing.B, multi bool) {
	g := fork(b)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, err := revenue.NewAdapter(g, trains("2", "2"), []string{"A"}, revenue.WithMultigraph(multi))
		if err != nil {
			b.Fatal(err)
		}
		if err = a.Initialize(ctx); err != nil {
			b.Fatal(err)
		}
		if _, err = a.Calculate(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdapter_Simple(b *testing.B)     { benchmarkFork(b, false) }
func BenchmarkAdapter_Multigraph(b *testing.B) { benchmarkFork(b, true) }
