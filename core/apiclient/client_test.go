package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashlingo/flashlingo-go/core/apiclient"
	"github.com/flashlingo/flashlingo-go/core/signal"
)

type staticTokenSource string

func (s staticTokenSource) Token() string { return string(s) }

func testConfig(baseURL string) apiclient.Config {
	return apiclient.Config{BaseURL: baseURL, Timeout: 5 * time.Second}
}

func TestClient_BearerInjection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"flashcards":[]}`))
	}))
	defer srv.Close()

	client := apiclient.New(testConfig(srv.URL), staticTokenSource("secret-token"), nil)
	_, err := client.Flashcards(context.Background())
	require.NoError(t, err)
}

func TestClient_UnauthorizedPublishesInvalidation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	bus := signal.NewBus(10)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := bus.Subscribe(ctx)

	client := apiclient.New(testConfig(srv.URL), staticTokenSource("expired"), bus)
	_, err := client.Flashcards(ctx)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

	select {
	case msg := <-sub.Receive(ctx):
		assert.Equal(t, signal.KindSessionInvalidated, msg.Data.Kind)
		assert.Contains(t, msg.Data.Reason, "/api/flashcards/all")
	case <-time.After(time.Second):
		t.Fatal("expected session-invalidated signal")
	}
}

func TestClient_PasswordLogin(t *testing.T) {
	t.Parallel()

	t.Run("exchanges credentials for token", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "user@example.com", r.PostFormValue("username"))
			assert.Equal(t, "hunter2", r.PostFormValue("password"))
			_, _ = w.Write([]byte(`{"access_token":"jwt-abc","token_type":"bearer"}`))
		}))
		defer srv.Close()

		client := apiclient.New(testConfig(srv.URL), nil, nil)
		token, err := client.PasswordLogin(context.Background(), "user@example.com", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", token)
	})

	t.Run("rejected credentials map to ErrInvalidCredentials", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
		}))
		defer srv.Close()

		client := apiclient.New(testConfig(srv.URL), nil, nil)
		_, err := client.PasswordLogin(context.Background(), "user@example.com", "wrong")

		assert.ErrorIs(t, err, apiclient.ErrInvalidCredentials)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"forbidden", http.StatusForbidden, `{"detail":"Only admins can access the waitlist."}`, apiclient.ErrForbidden},
		{"not found", http.StatusNotFound, `{"detail":"Waitlist entry not found."}`, apiclient.ErrNotFound},
		{"server error", http.StatusInternalServerError, ``, apiclient.ErrRequestFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := apiclient.New(testConfig(srv.URL), nil, nil)
			_, err := client.Waitlist(context.Background())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClient_Flashcards(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"flashcards":[
			{"id":"11","front":"hund","back":"dog","authorName":"anna","language":"Swedish","isOwner":true},
			{"id":"12","front":"katt","back":"cat","authorName":"erik","language":"Swedish","isOwner":false}
		]}`))
	}))
	defer srv.Close()

	client := apiclient.New(testConfig(srv.URL), nil, nil)
	cards, err := client.Flashcards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "hund", cards[0].Front)
	assert.True(t, cards[0].IsOwner)
	assert.False(t, cards[1].IsOwner)
}

func TestClient_CreateCatalog(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/catalogs/create", r.URL.Path)

		var body struct {
			Name         string   `json:"name"`
			FlashcardIDs []string `json:"flashcard_ids"`
			Visibility   string   `json:"visibility"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Swedish basics", body.Name)
		assert.Equal(t, []string{"11", "12"}, body.FlashcardIDs)
		assert.Equal(t, "private", body.Visibility, "visibility defaults to private")

		_, _ = w.Write([]byte(`{"id":7,"name":"Swedish basics","owner_id":1}`))
	}))
	defer srv.Close()

	client := apiclient.New(testConfig(srv.URL), nil, nil)
	catalog, err := client.CreateCatalog(context.Background(), apiclient.CreateCatalogParams{
		Name:         "Swedish basics",
		FlashcardIDs: []string{"11", "12"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), catalog.ID)
	assert.Equal(t, "Swedish basics", catalog.Name)
}

func TestClient_ImportWords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/words/import", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"status":"success","imported_count":2,"imported_words":["hund","katt"]}`))
	}))
	defer srv.Close()

	client := apiclient.New(testConfig(srv.URL), nil, nil)
	result, err := client.ImportWords(context.Background(), []string{"hund", "katt"}, []int64{1})

	require.NoError(t, err)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, []string{"hund", "katt"}, result.ImportedWords)
}

func TestClient_ExtractWords(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "words.txt", header.Filename)
		_, _ = w.Write([]byte(`{"words":["hund","katt"]}`))
	}))
	defer srv.Close()

	client := apiclient.New(testConfig(srv.URL), nil, nil)
	words, err := client.ExtractWords(context.Background(), "words.txt", strings.NewReader("hund\nkatt\n"))

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hund", "katt"}, words)
}
