package validation

import (
	"strings"
	"testing"

	"github.com/newsroom-platform-api/internal/models"
)

func TestValidateNewUser(t *testing.T) {
	tests := []struct {
		name       string
		user       models.User
		wantFields []string
	}{
		{
			name: "valid reader",
			user: models.User{Username: "alice", Email: "alice@example.com", Role: models.RoleReader},
		},
		{
			name:       "missing everything",
			user:       models.User{},
			wantFields: []string{"username", "email", "role"},
		},
		{
			name:       "bad email",
			user:       models.User{Username: "bob", Email: "not-an-email", Role: models.RoleEditor},
			wantFields: []string{"email"},
		},
		{
			name:       "username too short",
			user:       models.User{Username: "ab", Email: "ab@example.com", Role: models.RoleReader},
			wantFields: []string{"username"},
		},
		{
			name:       "unknown role",
			user:       models.User{Username: "carol", Email: "carol@example.com", Role: "admin"},
			wantFields: []string{"role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateNewUser(&tt.user)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, f := range tt.wantFields {
				if errs[i].Field != f {
					t.Errorf("error %d on field %q, want %q", i, errs[i].Field, f)
				}
			}
		})
	}
}

func TestValidateContentFields(t *testing.T) {
	if errs := ValidateContentFields("A headline", "Some body text"); len(errs) != 0 {
		t.Errorf("valid content rejected: %v", errs)
	}
	if errs := ValidateContentFields("", ""); len(errs) != 2 {
		t.Errorf("expected title and body errors, got %v", errs)
	}
	if errs := ValidateContentFields("   ", "body"); len(errs) != 1 || errs[0].Field != "title" {
		t.Errorf("whitespace title should fail, got %v", errs)
	}
	if errs := ValidateContentFields(strings.Repeat("x", 301), "body"); len(errs) != 1 {
		t.Errorf("overlong title should fail, got %v", errs)
	}
}

func TestValidateCommentBody(t *testing.T) {
	if errs := ValidateCommentBody("nice article"); len(errs) != 0 {
		t.Errorf("valid comment rejected: %v", errs)
	}
	if errs := ValidateCommentBody(""); len(errs) != 1 || errs[0].Field != "body" {
		t.Errorf("empty comment should fail, got %v", errs)
	}
	if errs := ValidateCommentBody("  \t "); len(errs) != 1 {
		t.Errorf("whitespace comment should fail, got %v", errs)
	}
	if errs := ValidateCommentBody(strings.Repeat("a", models.MaxCommentLength+1)); len(errs) != 1 {
		t.Errorf("overlong comment should fail, got %v", errs)
	}
}
