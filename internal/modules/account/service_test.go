// README: Account service validation tests (no database).
package account

import (
	"context"
	"errors"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	svc := NewService(nil, nil, "123mudar")
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterCommand{Password: "pw"}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("missing registration: got %v", err)
	}
	if _, err := svc.Register(ctx, RegisterCommand{Registration: "10001"}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("missing password: got %v", err)
	}
}

func TestAuthenticateValidation(t *testing.T) {
	svc := NewService(nil, nil, "123mudar")
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, "", "pw"); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("missing registration: got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "10001", ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("missing password: got %v", err)
	}
}
