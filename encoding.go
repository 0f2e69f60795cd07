package iterm2img

import (
	"encoding/base64"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultChunkSize is the raw byte size of a multipart chunk (256KB once base64 encoded)
	DefaultChunkSize = 3 << 16
	// DefaultEncodingWorkers is the number of parallel workers for chunk encoding
	DefaultEncodingWorkers = 4
)

// Base64 encoder pool to reuse encoding buffers
var base64EncoderPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, base64.StdEncoding.EncodedLen(DefaultChunkSize))
		return &buf
	},
}

// Base64Encode encodes src with the standard padded alphabet, reusing pooled buffers
func Base64Encode(src []byte) string {
	bufPtr := base64EncoderPool.Get().(*[]byte)
	defer base64EncoderPool.Put(bufPtr)

	encodedLen := base64.StdEncoding.EncodedLen(len(src))
	if cap(*bufPtr) < encodedLen {
		*bufPtr = make([]byte, encodedLen)
	} else {
		*bufPtr = (*bufPtr)[:encodedLen]
	}

	base64.StdEncoding.Encode(*bufPtr, src)

	// string() copies, so the pooled buffer never aliases the result
	return string(*bufPtr)
}

// alignChunkSize rounds chunkSize down to a multiple of 3 so that every chunk
// but the last encodes without padding.
func alignChunkSize(chunkSize int) int {
	if chunkSize <= 0 {
		return DefaultChunkSize
	}
	return max(chunkSize-chunkSize%3, 3)
}

// chunkCount is ceil(n/chunkSize) without the n+chunkSize-1 overflow
func chunkCount(n, chunkSize int) int {
	count := n / chunkSize
	if n%chunkSize != 0 {
		count++
	}
	return count
}

// ChunkedBase64Encode splits data into aligned chunks and encodes each one.
// Concatenating the results yields Base64Encode(data).
func ChunkedBase64Encode(data []byte, chunkSize int) []string {
	chunkSize = alignChunkSize(chunkSize)

	results := make([]string, 0, chunkCount(len(data), chunkSize))
	for chunk := range slices.Chunk(data, chunkSize) {
		results = append(results, Base64Encode(chunk))
	}
	return results
}

// ParallelBase64Encode is ChunkedBase64Encode spread over a bounded worker pool
func ParallelBase64Encode(data []byte, chunkSize int) []string {
	chunkSize = alignChunkSize(chunkSize)
	if len(data)/2 <= chunkSize {
		// For small data, single-threaded is faster
		return ChunkedBase64Encode(data, chunkSize)
	}

	numChunks := chunkCount(len(data), chunkSize)
	results := make([]string, numChunks)

	var g errgroup.Group
	g.SetLimit(DefaultEncodingWorkers)
	for i := range numChunks {
		g.Go(func() error {
			start := i * chunkSize
			end := min(start+chunkSize, len(data))
			results[i] = Base64Encode(data[start:end])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return results
}
