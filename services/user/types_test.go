package user

import (
	"testing"

	"github.com/fatih/structs"

	"campCrew/utils"
)

func TestProfileUpdateFieldMap(t *testing.T) {
	t.Run("nil fields are skipped", func(t *testing.T) {
		update := ProfileUpdate{
			PlayaName: utils.ToPointer("Sparkle"),
			Bio:       utils.ToPointer("first year"),
		}
		fields := structs.Map(update)

		if len(fields) != 2 {
			t.Fatalf("expected 2 fields, got %d: %v", len(fields), fields)
		}
		if _, ok := fields["playaName"]; !ok {
			t.Error("expected playaName in field map")
		}
		if _, ok := fields["bio"]; !ok {
			t.Error("expected bio in field map")
		}
	})

	t.Run("empty patch maps to nothing", func(t *testing.T) {
		fields := structs.Map(ProfileUpdate{})
		if len(fields) != 0 {
			t.Errorf("expected empty field map, got %v", fields)
		}
	})

	t.Run("contact fields use dotted document paths", func(t *testing.T) {
		update := ProfileUpdate{ContactEmail: utils.ToPointer("dusty@example.com")}
		fields := structs.Map(update)
		if _, ok := fields["contactInfo.email"]; !ok {
			t.Errorf("expected contactInfo.email in field map, got %v", fields)
		}
	})
}

func TestRoleIsValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleMember, true},
		{RoleAdmin, true},
		{Role("superuser"), false},
		{Role(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (User{Role: RoleMember}).IsAdmin() {
		t.Error("member should not be admin")
	}
	if !(User{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin should be admin")
	}
}
