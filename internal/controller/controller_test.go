package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/conjunx/editor/internal/display"
	"github.com/conjunx/editor/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, handler http.HandlerFunc, target display.Target) *PageController {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(target, fetcher.NewClip(server.Client(), server.URL+"/editor/"))
}

func wait(t *testing.T, ch <-chan Result) Result {
	t.Helper()
	select {
	case res, ok := <-ch:
		require.True(t, ok, "result channel closed without a result")
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for LoadContent")
		return Result{}
	}
}

func TestLoadContentWritesBody(t *testing.T) {
	target := display.NewBuffer("")
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}, target)

	res := wait(t, c.LoadContent(context.Background()))
	require.NoError(t, res.Err)
	assert.Equal(t, "Clip Browser", res.Name)
	assert.Equal(t, "hello", res.Text)
	assert.Equal(t, "hello", target.Text())
	assert.Equal(t, 1, target.Writes())
}

func TestLoadContentIssuesSingleGet(t *testing.T) {
	var count atomic.Int32
	var method, path, query atomic.Value
	var contentLength atomic.Int64
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		count.Add(1)
		method.Store(r.Method)
		path.Store(r.URL.Path)
		query.Store(r.URL.RawQuery)
		contentLength.Store(r.ContentLength)
	}, display.NewBuffer(""))

	res := wait(t, c.LoadContent(context.Background()))
	require.NoError(t, res.Err)

	assert.Equal(t, int32(1), count.Load())
	assert.Equal(t, http.MethodGet, method.Load())
	assert.Equal(t, "/editor/clip", path.Load())
	assert.Equal(t, "", query.Load())
	assert.Equal(t, int64(0), contentLength.Load())
}

func TestLoadContentPendingLeavesTargetUnchanged(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan struct{})
	target := display.NewBuffer("existing")
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
	}, target)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	done := c.LoadContent(ctx)

	<-arrived
	select {
	case <-done:
		t.Fatal("LoadContent completed while the request was pending")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, "existing", target.Text())
	assert.Equal(t, 0, target.Writes())

	cancel()
	res := wait(t, done)
	assert.Error(t, res.Err)
	assert.Equal(t, "existing", target.Text())
}

func TestLoadContentEmptyBody(t *testing.T) {
	target := display.NewBuffer("previous clips")
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {}, target)

	res := wait(t, c.LoadContent(context.Background()))
	require.NoError(t, res.Err)
	assert.Equal(t, "", target.Text())
	assert.Equal(t, 1, target.Writes())
}

func TestLoadContentMissingTarget(t *testing.T) {
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}, nil)

	var done <-chan Result
	require.NotPanics(t, func() { done = c.LoadContent(context.Background()) })
	res := wait(t, done)
	assert.NoError(t, res.Err)
	assert.Equal(t, "hello", res.Text)
}

func TestLoadContentFailureLeavesTarget(t *testing.T) {
	target := display.NewBuffer("existing")
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}, target)

	res := wait(t, c.LoadContent(context.Background()))
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "status 500")
	assert.Equal(t, "existing", target.Text())
	assert.Equal(t, 0, target.Writes())
}

func TestLoadContentTwiceLastResponseWins(t *testing.T) {
	var count atomic.Int32
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	target := display.NewBuffer("")
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		switch count.Add(1) {
		case 1:
			close(firstArrived)
			<-releaseFirst
			w.Write([]byte("first"))
		default:
			w.Write([]byte("second"))
		}
	}, target)

	first := c.LoadContent(context.Background())
	<-firstArrived
	second := c.LoadContent(context.Background())

	res := wait(t, second)
	require.NoError(t, res.Err)
	assert.Equal(t, "second", target.Text())

	close(releaseFirst)
	res = wait(t, first)
	require.NoError(t, res.Err)
	assert.Equal(t, "first", target.Text())

	assert.Equal(t, int32(2), count.Load())
	assert.Equal(t, 2, target.Writes())
}

func TestLoadContentClosesChannel(t *testing.T) {
	c := newController(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}, display.NewBuffer(""))

	done := c.LoadContent(context.Background())
	wait(t, done)
	_, ok := <-done
	assert.False(t, ok)
}

func TestNewNilFetcherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "controller: nil fetcher", func() {
		New(display.NewBuffer(""), nil)
	})
}
