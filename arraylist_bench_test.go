package collections

import (
	"fmt"
	"testing"
)

func BenchmarkArrayList_Add(b *testing.B) {
	sizes := []int{64, 1024, 16384}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l, _ := New[int](1)
				for j := range size {
					_ = l.Add(j)
				}
			}
		})
	}
}

func BenchmarkArrayList_InsertFront(b *testing.B) {
	sizes := []int{64, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			l, _ := New[int](size + 1)
			for j := range size {
				_ = l.Add(j)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = l.Insert(0, i)
				_ = l.Remove(0)
			}
		})
	}
}

func BenchmarkEqList_RemoveAll(b *testing.B) {
	sizes := []int{64, 1024}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				l, _ := NewEqList(Equal[int](), size)
				for j := range size {
					_ = l.Add(j % 4)
				}
				b.StartTimer()
				_, _ = l.RemoveAll(0)
			}
		})
	}
}
