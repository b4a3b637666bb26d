package search

import (
	"crypto/sha256"
	"strconv"
	"strings"
	"time"
)

// cacheEntry is a cached search response with its expiration time.
type cacheEntry struct {
	response  *Response
	expiresAt time.Time
}

// checkCache returns a copy of a valid cached response, or nil on miss or
// expiry. Expired entries are evicted on the way out.
func (e *Engine) checkCache(req Request) *Response {
	key := requestKey(req)
	entry, found := e.cache.Get(key)
	if !found {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		e.cache.Remove(key)
		return nil
	}
	return copyResponse(entry.response)
}

// storeInCache saves a deep copy of the response so later mutation by the
// caller cannot leak into cached reads.
func (e *Engine) storeInCache(req Request, resp *Response) {
	e.cache.Add(requestKey(req), &cacheEntry{
		response:  copyResponse(resp),
		expiresAt: time.Now().Add(req.CacheTTL),
	})
}

// copyResponse deep-copies a Response, including the result map.
func copyResponse(src *Response) *Response {
	if src == nil {
		return nil
	}
	dst := *src
	dst.Result = src.Result.Clone()
	return &dst
}

// requestKey builds a deterministic hash over every request field that
// affects the result. Duration-style knobs (cache TTL) are excluded.
func requestKey(req Request) [32]byte {
	var data strings.Builder
	data.WriteString(req.Root)
	data.WriteString("|")
	data.WriteString(strings.Join(req.Keywords, "\x00"))
	data.WriteString("|")
	data.WriteString(strings.Join(req.AllowExtensions, ","))
	data.WriteString("|")
	data.WriteString(strconv.FormatBool(req.CaseInsensitive))
	data.WriteString("|")
	data.WriteString(req.Strategy)
	data.WriteString("|")
	data.WriteString(strconv.Itoa(req.Workers))
	return sha256.Sum256([]byte(data.String()))
}
