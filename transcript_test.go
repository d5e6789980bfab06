package slidepath

import (
	"context"
	"reflect"
	"testing"
)

func TestTranscript_Found(t *testing.T) {
	g := mustGrid(t,
		"S...0",
		"....F",
	)
	res, err := Solve(context.Background(), g, WithHeuristic(SlideBound))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"1. Start at (1,1)",
		"2. Move Down to (1,2)",
		"3. Move Right to (5,2)",
		"4. Done!",
	}
	if got := Transcript(g.Start(), res); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranscript_EmptyPath(t *testing.T) {
	got := Transcript(Position{Row: 2, Col: 0}, Result{Found: true, Moves: []Move{}})
	want := []string{"1. Start at (1,3)", "2. Done!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranscript_NoSolution(t *testing.T) {
	if got := Transcript(Position{}, Result{}); !reflect.DeepEqual(got, []string{NoSolution}) {
		t.Fatalf("unexpected %q", got)
	}
}
