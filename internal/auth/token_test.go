package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token *Token
		want  bool
	}{
		{
			name:  "nil token",
			token: nil,
			want:  false,
		},
		{
			name:  "empty access token",
			token: &Token{},
			want:  false,
		},
		{
			name:  "no expiry",
			token: &Token{AccessToken: "token"},
			want:  true,
		},
		{
			name: "valid with future expiry",
			token: &Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(time.Hour),
			},
			want: true,
		},
		{
			name: "expired",
			token: &Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(-time.Hour),
			},
			want: false,
		},
		{
			name: "expiring inside the buffer",
			token: &Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(TokenExpirationBuffer / 2),
			},
			want: false,
		},
		{
			name: "expiring just outside the buffer",
			token: &Token{
				AccessToken: "token",
				ExpiresAt:   time.Now().Add(TokenExpirationBuffer + 5*time.Second),
			},
			want: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.token.Valid())
		})
	}
}

func TestTokenStore(t *testing.T) {
	t.Parallel()
	t.Run("empty store returns nil", func(t *testing.T) {
		t.Parallel()

		store := NewTokenStore()
		assert.Nil(t, store.Get())
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		store := NewTokenStore()
		token := &Token{AccessToken: "token", TokenType: "bearer"}

		store.Set(token)
		assert.Equal(t, token, store.Get())
	})

	t.Run("set replaces previous token", func(t *testing.T) {
		t.Parallel()

		store := NewTokenStore()
		store.Set(&Token{AccessToken: "first"})
		store.Set(&Token{AccessToken: "second"})

		assert.Equal(t, "second", store.Get().AccessToken)
	})

	t.Run("clear removes token", func(t *testing.T) {
		t.Parallel()

		store := NewTokenStore()
		store.Set(&Token{AccessToken: "token"})
		store.Clear()

		assert.Nil(t, store.Get())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		store := NewTokenStore()

		var waitGroup sync.WaitGroup

		for i := 0; i < 50; i++ {
			waitGroup.Add(2)

			go func() {
				defer waitGroup.Done()

				store.Set(&Token{AccessToken: "token"})
			}()

			go func() {
				defer waitGroup.Done()

				_ = store.Get().Valid()
			}()
		}

		waitGroup.Wait()
	})
}
