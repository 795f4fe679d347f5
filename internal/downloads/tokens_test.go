package downloads_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"docuvault/internal/downloads"
)

func TestLinkTokensRoundTrip(t *testing.T) {
	tokens := downloads.NewLinkTokens("test-secret", time.Minute)
	documentID := uuid.New()

	signed, err := tokens.Sign(documentID)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if err := tokens.Verify(signed, documentID); err != nil {
		t.Errorf("verify failed: %v", err)
	}
}

func TestLinkTokensRejectsOtherDocument(t *testing.T) {
	tokens := downloads.NewLinkTokens("test-secret", time.Minute)

	signed, err := tokens.Sign(uuid.New())
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if err := tokens.Verify(signed, uuid.New()); !errors.Is(err, downloads.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestLinkTokensRejectsExpired(t *testing.T) {
	tokens := downloads.NewLinkTokens("test-secret", -time.Minute)
	documentID := uuid.New()

	signed, err := tokens.Sign(documentID)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if err := tokens.Verify(signed, documentID); !errors.Is(err, downloads.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestLinkTokensRejectsWrongSecret(t *testing.T) {
	signer := downloads.NewLinkTokens("signer-secret", time.Minute)
	verifier := downloads.NewLinkTokens("other-secret", time.Minute)
	documentID := uuid.New()

	signed, err := signer.Sign(documentID)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if err := verifier.Verify(signed, documentID); !errors.Is(err, downloads.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestLinkTokensRejectsMalformed(t *testing.T) {
	tokens := downloads.NewLinkTokens("test-secret", time.Minute)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if err := tokens.Verify(token, uuid.New()); !errors.Is(err, downloads.ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}
