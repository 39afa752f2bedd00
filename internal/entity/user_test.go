package entity

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", "Admin", RoleAdmin, false},
		{"receptionist", "Receptionist", RoleReceptionist, false},
		{"guest", "Guest", RoleGuest, false},
		{"lowercase", "admin", RoleAdmin, false},
		{"uppercase", "GUEST", RoleGuest, false},
		{"padded", "  Receptionist  ", RoleReceptionist, false},
		{"unknown", "Manager", "", true},
		{"empty", "", "", true},
		{"superuser", "root", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRole(%q) accepted, want rejection", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRole(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatusValidators(t *testing.T) {
	if !IsValidBookingStatus("Checked In") {
		t.Error(`"Checked In" rejected`)
	}
	if IsValidBookingStatus("checked in") {
		t.Error("status vocabulary is case sensitive")
	}
	if !IsValidPaymentMethod("GCash") || !IsValidPaymentMethod("Cash") {
		t.Error("known payment methods rejected")
	}
	if IsValidPaymentMethod("Card") {
		t.Error(`"Card" accepted, want rejection`)
	}
	if !IsValidRoomStatus("Maintenance") {
		t.Error(`"Maintenance" rejected`)
	}
	if IsValidPromotionStatus("Expired") {
		t.Error(`"Expired" accepted, want rejection`)
	}
}
