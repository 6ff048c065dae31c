// Package ratelimit provides the fixed-interval throttle that paces
// repository lookups. A single limiter is shared by every probe worker,
// so raising concurrency never raises the request rate beyond the
// configured interval.
package ratelimit
