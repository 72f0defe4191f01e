package auth

import (
	"testing"

	"github.com/newsroom-platform-api/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		name       string
		principal  *Principal
		capability Capability
		want       bool
	}{
		{"journalist can author", &Principal{ID: "j1", Role: models.RoleJournalist}, CapAuthorContent, true},
		{"journalist cannot review", &Principal{ID: "j1", Role: models.RoleJournalist}, CapReviewContent, false},
		{"journalist cannot subscribe", &Principal{ID: "j1", Role: models.RoleJournalist}, CapSubscribe, false},
		{"editor can review", &Principal{ID: "e1", Role: models.RoleEditor}, CapReviewContent, true},
		{"editor cannot author", &Principal{ID: "e1", Role: models.RoleEditor}, CapAuthorContent, false},
		{"reader can subscribe", &Principal{ID: "r1", Role: models.RoleReader}, CapSubscribe, true},
		{"reader cannot author", &Principal{ID: "r1", Role: models.RoleReader}, CapAuthorContent, false},
		{"reader cannot review", &Principal{ID: "r1", Role: models.RoleReader}, CapReviewContent, false},
		{"nil principal always denied", nil, CapAuthorContent, false},
		{"unknown role denied", &Principal{ID: "x1", Role: "superuser"}, CapReviewContent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.principal, tt.capability); got != tt.want {
				t.Errorf("Can(%v, %q) = %v, want %v", tt.principal, tt.capability, got, tt.want)
			}
		})
	}
}

func TestCanMutateContent(t *testing.T) {
	tests := []struct {
		name      string
		principal *Principal
		authorID  string
		want      bool
	}{
		{"editor mutates anything", &Principal{ID: "e1", Role: models.RoleEditor}, "j1", true},
		{"journalist mutates own content", &Principal{ID: "j1", Role: models.RoleJournalist}, "j1", true},
		{"journalist denied on someone else's content", &Principal{ID: "j2", Role: models.RoleJournalist}, "j1", false},
		{"reader always denied", &Principal{ID: "r1", Role: models.RoleReader}, "r1", false},
		{"nil principal denied", nil, "j1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutateContent(tt.principal, tt.authorID); got != tt.want {
				t.Errorf("CanMutateContent(%v, %q) = %v, want %v", tt.principal, tt.authorID, got, tt.want)
			}
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	journalist := &Principal{ID: "j1", Role: models.RoleJournalist}
	editor := &Principal{ID: "e1", Role: models.RoleEditor}
	reader := &Principal{ID: "r1", Role: models.RoleReader}

	if !IsJournalist(journalist) || IsJournalist(editor) || IsJournalist(nil) {
		t.Error("IsJournalist misclassified a principal")
	}
	if !IsEditor(editor) || IsEditor(reader) || IsEditor(nil) {
		t.Error("IsEditor misclassified a principal")
	}
	if !IsReader(reader) || IsReader(journalist) || IsReader(nil) {
		t.Error("IsReader misclassified a principal")
	}
}
