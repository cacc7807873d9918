package domain

import (
	"errors"
	"testing"
)

func TestNewPermission(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Permission
		wantErr error
	}{
		{
			name:    "fine location",
			input:   "fine_location",
			want:    PermissionFineLocation,
			wantErr: nil,
		},
		{
			name:    "background location",
			input:   "background_location",
			want:    PermissionBackgroundLocation,
			wantErr: nil,
		},
		{
			name:    "unknown permission",
			input:   "camera",
			want:    "",
			wantErr: ErrInvalidPermission,
		},
		{
			name:    "empty string",
			input:   "",
			want:    "",
			wantErr: ErrInvalidPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPermission(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewPermission() error = %v, wantErr %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Errorf("NewPermission() unexpected error = %v", err)

				return
			}

			if got != tt.want {
				t.Errorf("NewPermission() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequiredPermissions(t *testing.T) {
	withBackground := RequiredPermissions(true)
	if len(withBackground) != 2 || withBackground[1] != PermissionBackgroundLocation {
		t.Errorf("RequiredPermissions(true) = %v", withBackground)
	}

	foregroundOnly := RequiredPermissions(false)
	if len(foregroundOnly) != 1 || foregroundOnly[0] != PermissionFineLocation {
		t.Errorf("RequiredPermissions(false) = %v", foregroundOnly)
	}
}
