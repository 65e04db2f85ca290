package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		state UIState
		value int
		name  string
	}{
		{UINormal, 0, "normal"},
		{UIHovered, 1, "hovered"},
		{UIClicked, 2, "clicked"},
		{UIDisabled, 3, "disabled"},
		{UIState(42), 42, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.state.String(), tt.name)
			}
		})
	}
}

// TestRectContains 点击判定包含边界
func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"内部", 50, 40, true},
		{"左上角", 10, 20, true},
		{"右下角", 110, 70, true},
		{"左侧外", 9.9, 40, false},
		{"下方外", 50, 70.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
