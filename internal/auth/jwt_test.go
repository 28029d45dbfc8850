// README: Token issuance/verification tests using an in-memory session store.
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Castanheira1/leopardo-api/internal/types"
)

type memSessions struct {
	live map[string]map[string]bool
}

func newMemSessions() *memSessions {
	return &memSessions{live: map[string]map[string]bool{}}
}

func (m *memSessions) Add(_ context.Context, accountID types.ID, jti string, _ time.Duration) error {
	key := string(accountID)
	if m.live[key] == nil {
		m.live[key] = map[string]bool{}
	}
	m.live[key][jti] = true
	return nil
}

func (m *memSessions) IsLive(_ context.Context, accountID types.ID, jti string) (bool, error) {
	return m.live[string(accountID)][jti], nil
}

func (m *memSessions) RevokeAll(_ context.Context, accountID types.ID) error {
	delete(m.live, string(accountID))
	return nil
}

func TestIssueAndVerify(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	issuer := NewIssuer("test-secret", time.Hour, sessions)

	token, expiresAt, err := issuer.Issue(ctx, "acct-1", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("token already expired")
	}

	id, err := issuer.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.AccountID != "acct-1" || !id.Admin {
		t.Fatalf("identity = %+v", id)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer("test-secret", time.Hour, newMemSessions())

	token, _, err := issuer.Issue(ctx, "acct-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := issuer.Verify(ctx, token+"x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token: got %v", err)
	}

	other := NewIssuer("other-secret", time.Hour, newMemSessions())
	if _, err := other.Verify(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: got %v", err)
	}
}

func TestVerifyRejectsRevokedSession(t *testing.T) {
	ctx := context.Background()
	sessions := newMemSessions()
	issuer := NewIssuer("test-secret", time.Hour, sessions)

	token, _, err := issuer.Issue(ctx, "acct-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := sessions.RevokeAll(ctx, "acct-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := issuer.Verify(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("revoked session: got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer("test-secret", -time.Minute, newMemSessions())

	token, _, err := issuer.Issue(ctx, "acct-1", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := issuer.Verify(ctx, token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: got %v", err)
	}
}
