package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestParseWordbook(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?>
<wordbook>
  <item>
    <word>apple</word>
    <trans><![CDATA[n. 苹果;  a fruit]]></trans>
    <tags>Fruit</tags>
  </item>
  <item>
    <word>  banana  </word>
    <trans>香蕉</trans>
    <tags>Fruit</tags>
  </item>
</wordbook>`

	entries, skipped, err := ParseWordbook(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWordbook: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Word != "apple" || entries[0].Category != "Fruit" {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	// Runs of spaces inside the CDATA collapse to one.
	if entries[0].Translation != "n. 苹果; a fruit" {
		t.Fatalf("translation = %q", entries[0].Translation)
	}
	if entries[1].Word != "banana" {
		t.Fatalf("word not trimmed: %q", entries[1].Word)
	}
}

func TestParseWordbookSkipsIncompleteItems(t *testing.T) {
	input := `<wordbook>
  <item><word>apple</word><trans>苹果</trans><tags>Fruit</tags></item>
  <item><word></word><trans>无名</trans><tags>Fruit</tags></item>
  <item><word>pear</word><trans></trans><tags>Fruit</tags></item>
  <item><word>plum</word><trans>李子</trans><tags></tags></item>
</wordbook>`

	entries, skipped, err := ParseWordbook(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWordbook: %v", err)
	}
	if len(entries) != 1 || entries[0].Word != "apple" {
		t.Fatalf("entries = %+v, want just apple", entries)
	}
	if skipped != 3 {
		t.Fatalf("skipped = %d, want 3", skipped)
	}
}

func TestParseWordbookRejectsInvalidInput(t *testing.T) {
	cases := map[string]string{
		"wrong root": `<dictionary><item><word>a</word></item></dictionary>`,
		"not xml":    `word,translation`,
		"no items":   `<wordbook></wordbook>`,
	}
	for name, input := range cases {
		if _, _, err := ParseWordbook(strings.NewReader(input)); !errors.Is(err, ErrInvalidWordbook) {
			t.Errorf("%s: err = %v, want ErrInvalidWordbook", name, err)
		}
	}
}

func TestCleanTranslation(t *testing.T) {
	in := "n.  苹果\n      vt. to apple\n\tsomething"
	want := "n. 苹果\nvt. to apple\nsomething"
	if got := cleanTranslation(in); got != want {
		t.Fatalf("cleanTranslation = %q, want %q", got, want)
	}
}
