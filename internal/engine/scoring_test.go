package engine

import "testing"

func TestLineScore(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 0},
		{-1, 0},
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
		{5, 1200},
		{6, 1400},
		{9, 2000},
	}
	for _, tt := range tests {
		if got := LineScore(tt.lines); got != tt.want {
			t.Errorf("LineScore(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestLevelForLines(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{100, 21},
		{490, 99},
		{10000, 99},
	}
	for _, tt := range tests {
		if got := LevelForLines(tt.lines); got != tt.want {
			t.Errorf("LevelForLines(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{0, 400}, // clamped up to level 1
		{1, 400},
		{2, 320},
		{3, 256},
		{10, 54},
		{11, 50}, // floor from here on
		{30, 50},
		{99, 50},
	}
	for _, tt := range tests {
		if got := DropInterval(tt.level); got != tt.want {
			t.Errorf("DropInterval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDropIntervalMonotonic(t *testing.T) {
	prev := DropInterval(1)
	for level := 2; level <= MaxLevel; level++ {
		cur := DropInterval(level)
		if cur > prev {
			t.Fatalf("DropInterval(%d) = %v > DropInterval(%d) = %v", level, cur, level-1, prev)
		}
		prev = cur
	}
}
