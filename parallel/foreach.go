// Package parallel contains the chunked parallel ForEachChunk() used by the gradient.
package parallel

import "sync"

// Chunks returns how many chunks of size chunk cover length items
func Chunks(length, chunk int) int {
	if length <= 0 || chunk <= 0 {
		return 0
	}
	return (length + chunk - 1) / chunk
}

// ForEachChunk splits 0..length into consecutive chunks of size chunk and executes body
// for each of them with at most limit concurrent goroutines.
// Body receives the chunk number n and the half open range [begin, end).
func ForEachChunk(length, chunk, limit int, body func(n, begin, end int)) {
	if limit <= 0 {
		limit = 1
	}
	count := Chunks(length, chunk)
	if count == 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(count)

	for n := 0; n < count; n++ {
		begin := n * chunk
		end := min(begin+chunk, length)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			body(n, begin, end)
		}()
	}

	wg.Wait()
}
