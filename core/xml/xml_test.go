package xml

import "testing"

const sample = `<?xml version="1.0"?>
<song xmlns="http://openlyrics.info/namespace/2009/song">
  <properties>
    <titles><title>Test Song</title></titles>
  </properties>
  <verse name="v1">
    <lines>first <chord root="D"/>second</lines>
  </verse>
</song>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatal("Root returned nil")
	}
	if root.Name() != "song" {
		t.Errorf("Name = %q, want song", root.Name())
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("<unclosed")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestXPathLocalName(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	node, err := doc.XPathFirst("//*[local-name()='properties']")
	if err != nil {
		t.Fatalf("XPathFirst failed: %v", err)
	}
	if node == nil {
		t.Fatal("properties node not found")
	}

	verses, err := doc.XPath("//*[local-name()='verse']")
	if err != nil {
		t.Fatalf("XPath failed: %v", err)
	}
	if len(verses) != 1 {
		t.Fatalf("len(verses) = %d, want 1", len(verses))
	}
	if verses[0].Attr("name") != "v1" {
		t.Errorf("name attr = %q, want v1", verses[0].Attr("name"))
	}

	t.Run("invalid expression", func(t *testing.T) {
		if _, err := doc.XPath("//["); err == nil {
			t.Error("expected error for invalid xpath")
		}
	})
}

func TestChildNodesInterleaving(t *testing.T) {
	doc, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	lines, err := doc.XPathFirst("//*[local-name()='lines']")
	if err != nil || lines == nil {
		t.Fatalf("lines lookup failed: node=%v err=%v", lines, err)
	}

	var kinds []NodeKind
	for _, child := range lines.ChildNodes() {
		kinds = append(kinds, child.Kind())
	}
	want := []NodeKind{KindText, KindElement, KindText}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range kinds {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}

	chord := lines.ChildNodes()[1]
	if chord.Name() != "chord" {
		t.Errorf("Name = %q, want chord", chord.Name())
	}
	if !chord.HasAttr("root") {
		t.Error("HasAttr(root) = false, want true")
	}
	if chord.HasAttr("structure") {
		t.Error("HasAttr(structure) = true, want false")
	}
}
