package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type post struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

const postsPage = `{
	"docs": [{"id": "1", "title": "first"}, {"id": "2", "title": "second"}],
	"totalDocs": 5,
	"limit": 2,
	"totalPages": 3,
	"page": 1,
	"pagingCounter": 1,
	"hasPrevPage": false,
	"hasNextPage": true,
	"prevPage": null,
	"nextPage": 2
}`

// recordingHook collects every failure passed to it.
type recordingHook struct {
	mu    sync.Mutex
	calls []string
	errs  []error
}

func (h *recordingHook) OnError(_ context.Context, collection string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, collection)
	h.errs = append(h.errs, err)
}

func newFixtureServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestList_PaginationScenario(t *testing.T) {
	var gotURI string
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, postsPage)
	})

	client := New(srv.URL + "/api")
	page, err := List[post](context.Background(), client, "posts", Query{
		KeyLimit: String("2"),
		KeyPage:  String("1"),
	})
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, "/api/posts?limit=2&page=1", gotURI)
	assert.Len(t, page.Docs, 2)
	assert.Equal(t, "first", page.Docs[0].Title)
	assert.Equal(t, 5, page.TotalDocs)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)
	assert.Nil(t, page.PrevPage)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 2, *page.NextPage)
}

func TestList_EmptyQueryHasNoQueryString(t *testing.T) {
	var rawQuery, path string
	var forceQuery bool
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
		forceQuery = r.URL.ForceQuery
		fmt.Fprint(w, `{"docs": [], "totalDocs": 0, "page": 1}`)
	})

	client := New(srv.URL)
	for _, q := range []Query{nil, {}} {
		_, err := List[post](context.Background(), client, "posts", q)
		require.NoError(t, err)
		assert.Equal(t, "/posts", path)
		assert.Empty(t, rawQuery)
		assert.False(t, forceQuery)
	}

	assert.Equal(t, srv.URL+"/posts", client.CollectionURL("posts", nil))
}

func TestList_QueryReflectsEncodedPairs(t *testing.T) {
	var got map[string][]string
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		fmt.Fprint(w, `{"docs": []}`)
	})

	q := Query{
		"limit":  Int(10),
		"draft":  Bool(false),
		"sort":   String("-createdAt"),
		"weight": Float(0.5),
		"search": String("a b&c=d"),
	}.Where("status", "equals", String("published"))

	_, err := List[post](context.Background(), New(srv.URL), "posts", q)
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"limit":                 {"10"},
		"draft":                 {"false"},
		"sort":                  {"-createdAt"},
		"weight":                {"0.5"},
		"search":                {"a b&c=d"},
		"where[status][equals]": {"published"},
	}, got)
}

func TestList_NonSuccessStatus(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusBadGateway} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
				fmt.Fprint(w, `{"errors": [{"message": "nope"}]}`)
			})
			hook := &recordingHook{}

			page, err := List[post](context.Background(), New(srv.URL, WithErrorHook(hook)), "posts", nil)
			require.Error(t, err)
			assert.Nil(t, page)
			assert.True(t, IsRequestFailed(err))
			assert.Equal(t, code, StatusCode(err))

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, http.StatusText(code), cerr.Status)
			assert.Contains(t, err.Error(), http.StatusText(code))

			assert.Equal(t, []string{"posts"}, hook.calls)
			assert.Same(t, err, hook.errs[0])
		})
	}
}

func TestGet_Document(t *testing.T) {
	var path string
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		fmt.Fprint(w, `{"id": "abc", "title": "hello"}`)
	})

	doc, err := Get[post](context.Background(), New(srv.URL+"/api/"), "posts", "abc")
	require.NoError(t, err)
	assert.Equal(t, "/api/posts/abc", path)
	assert.Equal(t, post{ID: "abc", Title: "hello"}, doc)
}

func TestGet_NotFoundIsRequestFailed(t *testing.T) {
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	doc, err := Get[post](context.Background(), New(srv.URL), "posts", "missing")
	require.Error(t, err)
	assert.Equal(t, post{}, doc)
	assert.True(t, IsRequestFailed(err))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestMalformedJSONIsDecodeError(t *testing.T) {
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs": [`)
	})
	client := New(srv.URL)

	page, err := List[post](context.Background(), client, "posts", nil)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, IsDecode(err))

	_, err = Get[post](context.Background(), client, "posts", "1")
	require.Error(t, err)
	assert.True(t, IsDecode(err))
}

func TestWrongShapeIsDecodeError(t *testing.T) {
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs": "not a list"}`)
	})

	_, err := List[post](context.Background(), New(srv.URL), "posts", nil)
	require.Error(t, err)
	assert.True(t, IsDecode(err))
}

func TestNullOrEmptyBodyIsDecodeError(t *testing.T) {
	for _, body := range []string{"null", " null\n", "", "  "} {
		t.Run(fmt.Sprintf("%q", body), func(t *testing.T) {
			srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			})
			hook := &recordingHook{}
			client := New(srv.URL, WithErrorHook(hook))

			page, err := List[post](context.Background(), client, "posts", nil)
			require.Error(t, err)
			assert.Nil(t, page)
			assert.True(t, IsDecode(err))
			assert.ErrorIs(t, err, ErrEmptyBody)

			doc, err := Get[post](context.Background(), client, "posts", "1")
			require.Error(t, err)
			assert.Equal(t, post{}, doc)
			assert.True(t, IsDecode(err))

			assert.Len(t, hook.calls, 2)
		})
	}
}

func TestWithTimeoutKeepsInjectedClient(t *testing.T) {
	rt := &countingTransport{}

	c := New("http://example.invalid/api", WithHTTPClient(&http.Client{Transport: rt}), WithTimeout(3*time.Second))
	assert.Same(t, rt, c.httpClient.Transport)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)

	c = New("http://example.invalid/api", WithTimeout(3*time.Second), WithHTTPClient(&http.Client{Transport: rt}))
	assert.Same(t, rt, c.httpClient.Transport)

	// the shared default client is never mutated
	New("http://example.invalid/api", WithTimeout(time.Second))
	assert.Zero(t, http.DefaultClient.Timeout)
}

func TestTransportErrorIsLoggedAndReturned(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	core, logs := observer.New(zapcore.ErrorLevel)
	client := New(baseURL, WithErrorHook(ZapErrorHook(zap.New(core))))

	page, err := List[post](context.Background(), client, "posts", nil)
	require.Error(t, err)
	assert.Nil(t, page)
	assert.True(t, IsTransport(err))
	assert.False(t, IsRequestFailed(err))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "posts", fields["collection"])
	assert.Equal(t, "TransportError", fields["kind"])
	assert.NotEmpty(t, fields["error"])
}

func TestCancelledContextIsTransportError(t *testing.T) {
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, postsPage)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := List[post](ctx, New(srv.URL), "posts", nil)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmptyCollectionRejectedWithoutIO(t *testing.T) {
	rt := &countingTransport{}
	hook := &recordingHook{}
	client := New("http://example.invalid/api",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithErrorHook(hook),
	)

	_, err := List[post](context.Background(), client, "", nil)
	assert.ErrorIs(t, err, ErrEmptyCollection)
	_, err = Get[post](context.Background(), client, "", "1")
	assert.ErrorIs(t, err, ErrEmptyCollection)
	assert.Zero(t, rt.count.Load())

	// each rejection is reported to the hook once
	assert.Equal(t, []string{"", ""}, hook.calls)
	require.Len(t, hook.errs, 2)
	assert.ErrorIs(t, hook.errs[0], ErrEmptyCollection)
}

func TestConcurrentCallsDoNotCrossContaminate(t *testing.T) {
	srv := newFixtureServer(t, func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/posts/"):]
		fmt.Fprintf(w, `{"id": %q, "title": "title-%s"}`, id, id)
	})
	client := New(srv.URL)

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("doc-%d", i)
			doc, err := Get[post](context.Background(), client, "posts", id)
			if err != nil {
				errs <- err
				return
			}
			if doc.ID != id || doc.Title != "title-"+id {
				errs <- fmt.Errorf("request %s got %+v", id, doc)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNew_Defaults(t *testing.T) {
	client := New("")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())

	client = New("  https://cms.example.com/api/  ")
	assert.Equal(t, "https://cms.example.com/api", client.BaseURL())
	assert.Equal(t, "https://cms.example.com/api/pages/home", client.DocumentURL("pages", "home"))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindTransport, "TransportError"},
		{KindRequestFailed, "RequestFailed"},
		{KindDecode, "DecodeError"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

type countingTransport struct {
	count atomic.Int64
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.count.Add(1)
	return nil, errors.New("unexpected request")
}
