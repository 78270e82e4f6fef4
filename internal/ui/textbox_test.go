package ui

import "testing"

func newTestTextBox() *TextBox {
	tb := NewTextBox()
	tb.SetRect(0, 0, 120, 22)
	return tb
}

func TestTextBoxFocusAndBlur(t *testing.T) {
	tb := newTestTextBox()

	if blurred := tb.HandleMouse(10, 10, true); blurred {
		t.Fatal("gaining focus reported a blur")
	}
	if !tb.Focused() {
		t.Fatal("click inside did not focus")
	}

	if blurred := tb.HandleMouse(500, 500, true); !blurred {
		t.Fatal("click outside a focused field did not report a blur")
	}
	if tb.Focused() {
		t.Fatal("field still focused after an outside click")
	}

	// A second outside click is not another blur.
	if blurred := tb.HandleMouse(500, 500, true); blurred {
		t.Fatal("outside click on an unfocused field reported a blur")
	}
}

func TestTextBoxTyping(t *testing.T) {
	tb := newTestTextBox()
	tb.HandleMouse(10, 10, true)

	edited, committed := tb.HandleKeys([]rune("3.5"), false, false)
	if !edited || committed {
		t.Fatalf("typing: got (edited=%v, committed=%v)", edited, committed)
	}
	if tb.Text() != "3.5" {
		t.Fatalf("Text() = %q, want %q", tb.Text(), "3.5")
	}

	edited, _ = tb.HandleKeys(nil, true, false)
	if !edited || tb.Text() != "3." {
		t.Fatalf("backspace: edited=%v, text=%q", edited, tb.Text())
	}

	_, committed = tb.HandleKeys(nil, false, true)
	if !committed {
		t.Fatal("enter did not commit")
	}
}

func TestTextBoxIgnoresInputWhenUnfocused(t *testing.T) {
	tb := newTestTextBox()
	if edited, committed := tb.HandleKeys([]rune("42"), false, true); edited || committed {
		t.Fatal("unfocused field accepted input")
	}
	if tb.Text() != "" {
		t.Fatalf("unfocused field holds %q", tb.Text())
	}
}

func TestTextBoxSetTextIsSilent(t *testing.T) {
	tb := newTestTextBox()
	tb.SetText("180")
	if tb.Text() != "180" {
		t.Fatalf("Text() = %q, want %q", tb.Text(), "180")
	}
	// Backspace on an empty, focused selection edge case: deleting from an
	// empty field is not an edit.
	tb.SetText("")
	tb.HandleMouse(10, 10, true)
	if edited, _ := tb.HandleKeys(nil, true, false); edited {
		t.Fatal("backspace on empty text reported an edit")
	}
}
