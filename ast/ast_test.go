package ast

import "testing"

func TestLocalAssignString(t *testing.T) {
	stmt := &LocalAssign{
		Names:  []*Ident{{Name: "greeting"}},
		Values: []Expr{&String{Value: "hello"}},
	}
	if stmt.String() != `local greeting = "hello"` {
		t.Errorf("stmt.String() wrong. got=%q", stmt.String())
	}
}

func TestLocalAssignStringWithoutValues(t *testing.T) {
	stmt := &LocalAssign{Names: []*Ident{{Name: "a"}, {Name: "b"}}}
	if stmt.String() != "local a, b" {
		t.Errorf("stmt.String() wrong. got=%q", stmt.String())
	}
}

func TestFunctionCallString(t *testing.T) {
	call := &FunctionCall{
		Prefix: &FieldExpression{Prefix: &Ident{Name: "string"}, Field: "format"},
		Args:   []Expr{&String{Value: "%*"}, &Ident{Name: "value"}},
	}
	if call.String() != `string.format("%*", value)` {
		t.Errorf("call.String() wrong. got=%q", call.String())
	}
}

func TestMethodCallString(t *testing.T) {
	call := &FunctionCall{
		Prefix: &Ident{Name: "obj"},
		Method: "update",
		Args:   []Expr{&Number{Value: 1}},
	}
	if call.String() != "obj:update(1)" {
		t.Errorf("call.String() wrong. got=%q", call.String())
	}
}

func TestIfString(t *testing.T) {
	stmt := &If{
		Clauses: []IfClause{
			{
				Cond: &Binary{X: &Ident{Name: "x"}, Op: ">", Y: &Number{Value: 0}},
				Body: &Block{Stmts: []Stmt{&Break{}}},
			},
		},
		Else: &Block{Stmts: []Stmt{&Return{}}},
	}
	if stmt.String() != "if (x > 0) then break else return end" {
		t.Errorf("stmt.String() wrong. got=%q", stmt.String())
	}
}

func TestRepeatString(t *testing.T) {
	stmt := &Repeat{
		Body: &Block{Stmts: []Stmt{&Break{}}},
		Cond: &Ident{Name: "done"},
	}
	if stmt.String() != "repeat break until done" {
		t.Errorf("stmt.String() wrong. got=%q", stmt.String())
	}
}

func TestInterpolatedStringString(t *testing.T) {
	expr := &InterpolatedString{
		Segments: []Segment{
			&TextSegment{Value: "x="},
			&ValueSegment{X: &Ident{Name: "a"}},
			&TextSegment{Value: "!"},
		},
	}
	if expr.String() != "`x=${a}!`" {
		t.Errorf("expr.String() wrong. got=%q", expr.String())
	}
}

func TestInterpolatedStringIsEmpty(t *testing.T) {
	if !(&InterpolatedString{}).IsEmpty() {
		t.Error("expected empty interpolated string to report IsEmpty")
	}
	nonEmpty := &InterpolatedString{Segments: []Segment{&TextSegment{Value: "a"}}}
	if nonEmpty.IsEmpty() {
		t.Error("expected non-empty interpolated string to not report IsEmpty")
	}
}

func TestIterSegmentsIsRestartable(t *testing.T) {
	expr := &InterpolatedString{
		Segments: []Segment{
			&TextSegment{Value: "a"},
			&ValueSegment{X: &Ident{Name: "b"}},
		},
	}
	seq := expr.IterSegments()
	for round := 0; round < 2; round++ {
		var count int
		for segment := range seq {
			if segment != expr.Segments[count] {
				t.Errorf("round %d: segment %d out of order", round, count)
			}
			count++
		}
		if count != 2 {
			t.Errorf("round %d: expected 2 segments, got %d", round, count)
		}
	}
}

func TestBlockInsertStatement(t *testing.T) {
	block := &Block{Stmts: []Stmt{
		&Break{},
		&Return{},
	}}
	block.InsertStatement(0, &LocalAssign{Names: []*Ident{{Name: "x"}}})

	if len(block.Stmts) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(block.Stmts))
	}
	if block.Stmts[0].String() != "local x" {
		t.Errorf("unexpected statement at index 0: %q", block.Stmts[0].String())
	}
	if block.Stmts[1].String() != "break" || block.Stmts[2].String() != "return" {
		t.Errorf("subsequent statements disturbed: %q", block.String())
	}
}

func TestBlockInsertStatementInMiddle(t *testing.T) {
	block := &Block{Stmts: []Stmt{&Break{}, &Return{}}}
	block.InsertStatement(1, &Do{Body: &Block{}})

	if block.String() != "break\ndo  end\nreturn" {
		t.Errorf("block.String() wrong. got=%q", block.String())
	}
}
