package feature

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReferenceList(t *testing.T) {
	list := Reference()
	want := []string{"High Performance", "Developer Friendly", "Enterprise Ready"}
	if diff := cmp.Diff(want, list.Titles()); diff != "" {
		t.Fatalf("reference titles mismatch (-want +got):\n%s", diff)
	}
	icons := []IconRef{IconPerformance, IconDeveloper, IconSecurity}
	for i, record := range list.All() {
		if record.Icon() != icons[i] {
			t.Fatalf("record %d icon: want %s, got %s", i, icons[i], record.Icon())
		}
		if record.Description() == "" {
			t.Fatalf("record %d has empty description", i)
		}
	}
}

func TestListRecordsReturnsCopy(t *testing.T) {
	list := Reference()
	records := list.Records()
	records[0] = MustNew("Changed", "x.svg", "")

	if list.At(0).Title() != "High Performance" {
		t.Fatalf("list mutated through Records copy: %q", list.At(0).Title())
	}
	if Reference().At(0).Title() != "High Performance" {
		t.Fatalf("reference list mutated")
	}
}

func TestListSwapLeavesReceiverUntouched(t *testing.T) {
	list := Reference()
	swapped, err := list.Swap(0, 2)
	if err != nil {
		t.Fatalf("swap: %v", err)
	}
	want := []string{"Enterprise Ready", "Developer Friendly", "High Performance"}
	if diff := cmp.Diff(want, swapped.Titles()); diff != "" {
		t.Fatalf("swapped titles mismatch (-want +got):\n%s", diff)
	}
	if list.At(0).Title() != "High Performance" {
		t.Fatalf("receiver mutated by swap")
	}
	if _, err := list.Swap(0, 3); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestListRemoveAndReplace(t *testing.T) {
	list := Reference()

	removed, err := list.Remove(1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if diff := cmp.Diff([]string{"High Performance", "Enterprise Ready"}, removed.Titles()); diff != "" {
		t.Fatalf("removed titles mismatch (-want +got):\n%s", diff)
	}

	replaced, err := list.Replace(2, MustNew("Secure", IconSecurity, "locked down"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if diff := cmp.Diff([]string{"High Performance", "Developer Friendly", "Secure"}, replaced.Titles()); diff != "" {
		t.Fatalf("replaced titles mismatch (-want +got):\n%s", diff)
	}
	if list.Len() != 3 || list.At(2).Title() != "Enterprise Ready" {
		t.Fatalf("receiver mutated")
	}

	if _, err := list.Remove(3); err == nil {
		t.Fatalf("expected out of range error from Remove")
	}
	if _, err := list.Replace(-1, MustNew("x", "x.svg", "")); err == nil {
		t.Fatalf("expected out of range error from Replace")
	}
}

func TestListAppendAndEqual(t *testing.T) {
	var empty List
	if empty.Len() != 0 || empty.Records() != nil {
		t.Fatalf("zero list should be empty")
	}
	extra := MustNew("Extra", "extra.svg", "more")
	grown := Reference().Append(extra)
	if grown.Len() != 4 || Reference().Len() != 3 {
		t.Fatalf("append lengths: grown=%d reference=%d", grown.Len(), Reference().Len())
	}
	if !grown.At(3).Equal(extra) {
		t.Fatalf("appended record mismatch")
	}
	if !NewList(Reference().Records()...).Equal(Reference()) {
		t.Fatalf("expected copied list to equal reference")
	}
	if grown.Equal(Reference()) {
		t.Fatalf("lists of different length reported equal")
	}
}
