package cli

import (
	"bufio"
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText_SanitizesInput(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  <b>Karim</b>   Ahmed  \n"), "Name", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "bKarim/b Ahmed" {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(out.String(), "Name") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("no newline"), "p", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "no newline" {
		t.Fatalf("got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	n, err := GetInt(reader("7\n"), "qty", 1, &out)
	if err != nil || n != 7 {
		t.Fatalf("got %d, %v", n, err)
	}

	n, err = GetInt(reader("\n"), "qty", 3, &out)
	if err != nil || n != 3 {
		t.Fatalf("default not applied: got %d, %v", n, err)
	}

	if _, err := GetInt(reader("abc\n"), "qty", 1, &out); err == nil {
		t.Fatal("expected error for non-numeric input")
	}
}

func TestGetFloat(t *testing.T) {
	var out bytes.Buffer

	f, err := GetFloat(reader("60.5\n"), "charge", 0, &out)
	if err != nil || f != 60.5 {
		t.Fatalf("got %v, %v", f, err)
	}

	f, err = GetFloat(reader("\n"), "charge", 80, &out)
	if err != nil || f != 80 {
		t.Fatalf("default not applied: got %v, %v", f, err)
	}
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	options := []string{"Messenger", "Call", "Website"}

	got, err := GetChoice(reader("2\n"), "Source", options, "Website", &out)
	if err != nil || got != "Call" {
		t.Fatalf("got %q, %v", got, err)
	}

	got, err = GetChoice(reader("\n"), "Source", options, "Website", &out)
	if err != nil || got != "Website" {
		t.Fatalf("default not applied: got %q, %v", got, err)
	}

	if _, err := GetChoice(reader("9\n"), "Source", options, "Website", &out); err == nil {
		t.Fatal("expected error for out-of-range choice")
	}
}

func TestGetCommaList(t *testing.T) {
	var out bytes.Buffer
	got, err := GetCommaList(reader("01712345678, 01812345678,,\n"), "Numbers", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"01712345678", "01812345678"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pw != "s3cret" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
