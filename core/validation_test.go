package core

import (
	"errors"
	"testing"
)

func TestValidateInternship(t *testing.T) {
	tests := []struct {
		name       string
		internship *Internship
		wantErr    error
	}{
		{
			name: "valid record",
			internship: &Internship{
				Id:       1,
				Title:    "Backend Intern",
				Latitude: 19.0760, Longitude: 72.8777,
			},
			wantErr: nil,
		},
		{
			name: "valid record with only skills text",
			internship: &Internship{
				Id:             2,
				SkillsRequired: "Python",
			},
			wantErr: nil,
		},
		{
			name: "valid record with zero coordinates",
			internship: &Internship{
				Id:    3,
				Title: "Intern",
			},
			wantErr: nil,
		},
		{
			name:       "nil record",
			internship: nil,
			wantErr:    ErrInvalidInternship,
		},
		{
			name: "missing id",
			internship: &Internship{
				Title: "Intern",
			},
			wantErr: ErrMissingID,
		},
		{
			name: "no searchable text",
			internship: &Internship{
				Id:       4,
				Location: "Mumbai",
			},
			wantErr: ErrNoSearchableText,
		},
		{
			name: "latitude out of range",
			internship: &Internship{
				Id:       5,
				Title:    "Intern",
				Latitude: 91,
			},
			wantErr: ErrInvalidCoordinates,
		},
		{
			name: "longitude out of range",
			internship: &Internship{
				Id:        6,
				Title:     "Intern",
				Longitude: -181,
			},
			wantErr: ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInternship(tt.internship)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateInternship() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Errorf("ValidateInternship() error = nil, want %v", tt.wantErr)
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateInternship() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"origin", 0, 0, true},
		{"mumbai", 19.0760, 72.8777, true},
		{"north pole", 90, 0, true},
		{"date line", 0, 180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -90.1, 0, false},
		{"longitude too high", 0, 180.1, false},
		{"longitude too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidCoordinate(tt.lat, tt.lon); got != tt.want {
				t.Errorf("IsValidCoordinate(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}
