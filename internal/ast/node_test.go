package ast

import (
	"testing"
)

func TestNewNumber_Coercion(t *testing.T) {
	n := NewNumber(1.0)
	if n.Kind != Int || n.Int != 1 {
		t.Errorf("NewNumber(1.0) = %+v, want Int 1", n)
	}

	n = NewNumber(1.5)
	if n.Kind != Float || n.Float != 1.5 {
		t.Errorf("NewNumber(1.5) = %+v, want Float 1.5", n)
	}

	n = NewNumber(-3)
	if n.Kind != Int || n.Int != -3 {
		t.Errorf("NewNumber(-3) = %+v, want Int -3", n)
	}
}

func TestHead(t *testing.T) {
	n := NewList(NewSymbol("layer"), NewInt(1), NewSymbol("F.Cu"))
	h, ok := n.Head()
	if !ok || h != "layer" {
		t.Errorf("Head = %q, %v", h, ok)
	}

	if _, ok := NewList().Head(); ok {
		t.Error("empty list has no head")
	}
	if _, ok := NewList(NewInt(1)).Head(); ok {
		t.Error("list headed by a number has no tag")
	}
	if _, ok := NewSymbol("x").Head(); ok {
		t.Error("atoms have no head")
	}
}

func TestGet(t *testing.T) {
	board := NewList(
		NewSymbol("board"),
		NewList(NewSymbol("layer"), NewInt(1)),
		NewList(NewSymbol("thickness"), NewNumber(1.6)),
	)
	th, ok := board.Get("thickness")
	if !ok {
		t.Fatal("expected thickness")
	}
	if th.Items[1].Kind != Float || th.Items[1].Float != 1.6 {
		t.Errorf("thickness value = %+v", th.Items[1])
	}
	if _, ok := board.Get("missing"); ok {
		t.Error("Get of missing tag must fail")
	}
}

func TestEqual(t *testing.T) {
	a := NewList(NewSymbol("a"), NewInt(1), NewString(`x"y`))
	b := NewList(NewSymbol("a"), NewInt(1), NewString(`x"y`))
	if !a.Equal(b) {
		t.Error("equal trees reported unequal")
	}

	c := NewList(NewSymbol("a"), NewInt(2), NewString(`x"y`))
	if a.Equal(c) {
		t.Error("different trees reported equal")
	}

	// Int(1) и Float(1.0) — разные узлы; коэрция происходит при парсинге
	if NewInt(1).Equal(Node{Kind: Float, Float: 1}) {
		t.Error("Int and Float must not compare equal")
	}
}

func TestText(t *testing.T) {
	n := NewList(
		NewSymbol("a"),
		NewInt(-3),
		NewNumber(1.5),
		NewString(`x"y`),
		NewList(NewSymbol("xy"), NewInt(1), NewInt(2)),
	)
	want := `(a -3 1.5 "x\"y" (xy 1 2))`
	if got := n.Text(); got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestWalk(t *testing.T) {
	n := NewList(NewSymbol("a"), NewList(NewSymbol("b"), NewInt(1)))
	var visited []Kind
	Walk(n, func(x Node) bool {
		visited = append(visited, x.Kind)
		return true
	})
	want := []Kind{List, Symbol, List, Symbol, Int}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}

	// skip children when fn returns false
	count := 0
	Walk(n, func(x Node) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("pruned walk visited %d, want 1", count)
	}
}
