package csvparser

import (
	"strings"
	"testing"
)

func TestParseReaderBasic(t *testing.T) {
	input := "ITEM,DESCRIPTION,UPC\n1001,Chips,012345678905\n1002,Salsa,098765432109\n"

	data, err := ParseReader(strings.NewReader(input), DefaultSettings())
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if len(data.Headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(data.Headers))
	}
	if data.RowCount != 2 {
		t.Fatalf("expected 2 rows, got %d", data.RowCount)
	}

	// Leading zeros must survive parsing untouched.
	if got := data.Rows[0]["UPC"]; got != "012345678905" {
		t.Errorf("expected UPC %q, got %q", "012345678905", got)
	}
	if got := data.Rows[1]["DESCRIPTION"]; got != "Salsa" {
		t.Errorf("expected description %q, got %q", "Salsa", got)
	}
}

func TestParseReaderSkipsEmptyRows(t *testing.T) {
	input := "A,B\n1,2\n,\n3,4\n"

	data, err := ParseReader(strings.NewReader(input), DefaultSettings())
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if data.RowCount != 2 {
		t.Errorf("expected empty row to be skipped, got %d rows", data.RowCount)
	}
}

func TestParseReaderNamesEmptyHeaders(t *testing.T) {
	input := "A,,C\n1,2,3\n"

	data, err := ParseReader(strings.NewReader(input), DefaultSettings())
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if data.Headers[1] != "Column_2" {
		t.Errorf("expected placeholder header Column_2, got %q", data.Headers[1])
	}
	if got := data.Rows[0]["Column_2"]; got != "2" {
		t.Errorf("expected value under placeholder header, got %q", got)
	}
}

func TestParseReaderShortRecordsPadEmpty(t *testing.T) {
	input := "A,B,C\n1,2\n"

	data, err := ParseReader(strings.NewReader(input), DefaultSettings())
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if got, ok := data.Rows[0]["C"]; !ok || got != "" {
		t.Errorf("expected missing trailing column to be empty, got %q (present=%v)", got, ok)
	}
}

func TestParseReaderDelimiters(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		input     string
	}{
		{"pipe alias", "pipe", "A|B\n1|2\n"},
		{"pipe literal", "|", "A|B\n1|2\n"},
		{"tab alias", "tab", "A\tB\n1\t2\n"},
		{"semicolon", ";", "A;B\n1;2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseReader(strings.NewReader(tt.input), Settings{Delimiter: tt.delimiter, HeaderRow: 1})
			if err != nil {
				t.Fatalf("ParseReader returned error: %v", err)
			}
			if got := data.Rows[0]["B"]; got != "2" {
				t.Errorf("expected %q, got %q", "2", got)
			}
		})
	}
}

func TestParseReaderHeaderRowOffset(t *testing.T) {
	input := "Weekly Specials,\nITEM,PRICE\n1001,2.99\n"

	data, err := ParseReader(strings.NewReader(input), Settings{Delimiter: ",", HeaderRow: 2})
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if data.Headers[0] != "ITEM" {
		t.Errorf("expected header row 2 to be used, got headers %v", data.Headers)
	}
	if got := data.Rows[0]["PRICE"]; got != "2.99" {
		t.Errorf("expected price %q, got %q", "2.99", got)
	}
}

func TestParseReaderEmptyInput(t *testing.T) {
	if _, err := ParseReader(strings.NewReader(""), DefaultSettings()); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseReaderTrimsValues(t *testing.T) {
	input := "A,B\n  1 , hello \n"

	data, err := ParseReader(strings.NewReader(input), DefaultSettings())
	if err != nil {
		t.Fatalf("ParseReader returned error: %v", err)
	}

	if got := data.Rows[0]["A"]; got != "1" {
		t.Errorf("expected trimmed value %q, got %q", "1", got)
	}
	if got := data.Rows[0]["B"]; got != "hello" {
		t.Errorf("expected trimmed value %q, got %q", "hello", got)
	}
}
