package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/loganlanou/dealerpost/internal/apiclient"
	"github.com/loganlanou/dealerpost/internal/querycache"
	"github.com/loganlanou/dealerpost/internal/session"
	"github.com/loganlanou/dealerpost/internal/types"
)

// fakeAPI is an in-memory stand-in for the /api backend that counts every
// request it serves.
type fakeAPI struct {
	mu       sync.Mutex
	hits     map[string]int
	products []types.Product
	posts    []types.Post

	// Non-zero values make the matching endpoint fail with that status.
	syncStatus     int
	publishStatus  int
	deleteStatus   int
	registerDetail string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		hits: map[string]int{},
		products: []types.Product{
			{ASIN: "B001", Title: "Akıllı Telefon", Description: "128GB", Category: "Elektronik", Price: 8999.99, Currency: "TRY"},
			{ASIN: "B002", Title: "Koşu Ayakkabısı", Description: "Hafif", Category: "Spor", Price: 1299, Currency: "TRY"},
		},
		posts: []types.Post{
			{ID: "p1", Content: "Yeni telefon geldi!", Platform: "twitter", AIGenerated: true},
			{ID: "p2", Content: "Koşuya hazır mısın?", Platform: "instagram", Posted: true},
		},
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, v := range f.hits {
		n += v
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.products)
	})
	mux.HandleFunc("GET /api/products/categories/{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.CategoriesResponse{Categories: []string{"Elektronik", "Spor"}})
	})
	mux.HandleFunc("POST /api/products/sync", func(w http.ResponseWriter, r *http.Request) {
		if f.syncStatus != 0 {
			writeJSON(w, f.syncStatus, types.ErrorResponse{Detail: "upstream down"})
			return
		}
		writeJSON(w, http.StatusOK, types.SyncResponse{Message: "5 ürün senkronize edildi", Created: 5})
	})
	mux.HandleFunc("GET /api/posts/{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.posts)
	})
	mux.HandleFunc("POST /api/posts/generate", func(w http.ResponseWriter, r *http.Request) {
		var req types.GeneratePostRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		post := types.Post{ID: "p3", Content: "Taslak", Platform: req.Platform, ProductID: req.ProductID, AIGenerated: true}
		f.posts = append([]types.Post{post}, f.posts...)
		writeJSON(w, http.StatusOK, post)
	})
	mux.HandleFunc("POST /api/posts/{id}/publish", func(w http.ResponseWriter, r *http.Request) {
		if f.publishStatus != 0 {
			writeJSON(w, f.publishStatus, types.ErrorResponse{Detail: "Tweet yayınlanamadı: boom"})
			return
		}
		for i := range f.posts {
			if f.posts[i].ID == r.PathValue("id") {
				f.posts[i].Posted = true
			}
		}
		writeJSON(w, http.StatusOK, types.PublishResponse{Success: true, Platform: "twitter", Message: "Tweet başarıyla yayınlandı"})
	})
	mux.HandleFunc("DELETE /api/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		if f.deleteStatus != 0 {
			writeJSON(w, f.deleteStatus, types.ErrorResponse{Detail: "Gönderi bulunamadı"})
			return
		}
		kept := f.posts[:0:0]
		for _, p := range f.posts {
			if p.ID != r.PathValue("id") {
				kept = append(kept, p)
			}
		}
		f.posts = kept
		writeJSON(w, http.StatusOK, types.Message{Message: "Gönderi başarıyla silindi"})
	})
	mux.HandleFunc("GET /api/analytics/dashboard", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.DashboardAnalytics{
			TotalPosts:     2,
			PublishedPosts: 1,
			EngagementRate: 4.5,
			Range:          r.URL.Query().Get("range"),
			Platform:       r.URL.Query().Get("platform"),
		})
	})
	mux.HandleFunc("GET /api/analytics/trends", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.Trends{
			TrendingHashtags:    []types.TrendingHashtag{{Hashtag: "#teknoloji", TweetCount: 15000, TrendScore: 95}},
			CategorySuggestions: map[string][]string{"Elektronik": {"#teknoloji"}},
			Location:            "Turkey",
		})
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		if f.registerDetail != "" {
			writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Detail: f.registerDetail})
			return
		}
		writeJSON(w, http.StatusOK, types.User{ID: "u1", Email: "ayse@example.com", FullName: "Ayşe Yılmaz", IsActive: true})
	})
	mux.HandleFunc("POST /api/auth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("password") != "secret123" {
			writeJSON(w, http.StatusUnauthorized, types.ErrorResponse{Detail: "Incorrect email or password"})
			return
		}
		writeJSON(w, http.StatusOK, types.Token{AccessToken: "jwt-token", TokenType: "bearer"})
	})
	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.User{ID: "u1", Email: "ayse@example.com", FullName: "Ayşe Yılmaz", IsActive: true})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.hits[r.Method+" "+r.URL.Path]++
		mux.ServeHTTP(w, r)
	})
}

type testEnv struct {
	api      *fakeAPI
	server   *httptest.Server
	queries  *Queries
	actions  *Actions
	handler  *Handler
	sessions *session.Manager
	echo     *echo.Echo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	fake := newFakeAPI()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := apiclient.New(srv.URL, srv.Client())
	queries := NewQueries(client, querycache.New(querycache.DefaultStaleTime))
	sessions := session.NewManager("dashboard-test-secret-0000000000", false)
	h := NewHandler(client, queries, sessions)

	e := echo.New()
	h.RegisterRoutes(e)

	return &testEnv{
		api:      fake,
		server:   srv,
		queries:  queries,
		actions:  h.actions,
		handler:  h,
		sessions: sessions,
		echo:     e,
	}
}

// loginCookies returns session cookies for a signed-in user.
func (env *testEnv) loginCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, env.sessions.CreateSession(c, &session.UserData{
		ID:       "u1",
		Email:    "ayse@example.com",
		FullName: "Ayşe Yılmaz",
		Token:    "jwt-token",
	}))
	return rec.Result().Cookies()
}

func (env *testEnv) serve(req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

var testViewer = Viewer{UserID: "u1", Token: "jwt-token"}
