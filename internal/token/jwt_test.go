package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("signing-key", "registry", time.Hour)

	tok, err := svc.Issue(42, "bank", "0xbank1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Role != "bank" {
		t.Errorf("role = %q, want bank", claims.Role)
	}
	if claims.ChainAddress != "0xbank1" {
		t.Errorf("chain address = %q, want 0xbank1", claims.ChainAddress)
	}
	id, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("subject id: %v", err)
	}
	if id != 42 {
		t.Errorf("subject id = %d, want 42", id)
	}
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	a := NewService("key-a", "registry", time.Hour)
	b := NewService("key-b", "registry", time.Hour)

	tok, err := a.Issue(1, "bank", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Verify(tok); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("signing-key", "registry", -time.Minute)

	tok, err := svc.Issue(1, "bank", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Errorf("err = %v, want ErrExpired", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("signing-key", "registry", time.Hour)
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
