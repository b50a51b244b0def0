package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

// recordHeap samples live heap usage until stop is closed, then writes
// the accumulated samples to path as a markdown table and closes done.
func recordHeap(path string, every time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	records := "|seconds|mem|Heap|GC|"
	var memStats runtime.MemStats
	count := 1

	for {
		select {
		case <-stop:
			f, err := os.Create(path)
			if err != nil {
				fmt.Println(err)
				return
			}
			fmt.Fprintln(f, records)
			f.Close()
			return
		case <-time.After(every):
			runtime.ReadMemStats(&memStats)
			records += "\n |" + strconv.Itoa(count) +
				"|" + strconv.FormatUint(memStats.Alloc/1024/1024, 10) +
				"|" + strconv.FormatUint(memStats.HeapAlloc/1024/1024, 10) +
				"|" + strconv.Itoa(int(memStats.NumGC)) + "|"
			count++
		}
	}
}
