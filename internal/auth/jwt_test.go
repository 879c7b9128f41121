package auth

import "testing"

func TestIssueVerifyRoundtrip(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned an empty token")
	}

	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("Verify() userID = %d, want 42", userID)
	}
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	if _, err := tokens.Verify("not-a-token"); err == nil {
		t.Error("Verify() accepted a malformed token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-one")
	verifier := NewTokenService("secret-two")

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("Verify() accepted a token signed with a different secret")
	}
}
