package store

import (
	"context"
	"io"
	"time"

	"github.com/ddvk/ppl/metrics"
)

// Instrument reports every call on s to rec as store_<method>.
func Instrument(s Store, rec metrics.Recorder) Store {
	if rec == nil {
		return s
	}
	return &instrumented{next: s, rec: rec}
}

type instrumented struct {
	next Store
	rec  metrics.Recorder
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	s.rec.Observe("store_"+op, err == nil, time.Since(start))
}

func (s *instrumented) Driver() Driver { return s.next.Driver() }

func (s *instrumented) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (info Info, err error) {
	defer func(start time.Time) { s.observe("put", start, err) }(time.Now())
	return s.next.Put(ctx, key, r, opts)
}

func (s *instrumented) Get(ctx context.Context, key string) (info Info, rc io.ReadCloser, err error) {
	defer func(start time.Time) { s.observe("get", start, err) }(time.Now())
	return s.next.Get(ctx, key)
}

func (s *instrumented) Head(ctx context.Context, key string) (info Info, err error) {
	defer func(start time.Time) { s.observe("head", start, err) }(time.Now())
	return s.next.Head(ctx, key)
}

func (s *instrumented) Delete(ctx context.Context, key string) (ok bool, err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.Delete(ctx, key)
}

func (s *instrumented) List(ctx context.Context, prefix string) (infos []Info, err error) {
	defer func(start time.Time) { s.observe("list", start, err) }(time.Now())
	return s.next.List(ctx, prefix)
}
