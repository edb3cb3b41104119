// Package backoff contains a calculator for capped exponential backoff durations with jitter.
//
// The package computes how long to wait before a retry attempt; it never
// sleeps, retries or decides retryability itself. Callers own the retry loop
// and track the attempt count.
//
// See the article for reference: [Reference]
//
// [Reference]: https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter/
package backoff
