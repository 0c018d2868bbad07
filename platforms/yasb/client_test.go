package yasb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/testutils"
)

func TestResolve(t *testing.T) {
	fakeYASB := testutils.NewFakeYASBServer()
	defer fakeYASB.Close()
	client := NewForTest(fakeYASB.URL())

	list, raw, err := client.Resolve(context.Background(), "https://yasb.app/?f=Rebel%20Alliance&d=v9")
	if err != nil {
		t.Fatalf("error resolving list: %v", err)
	}

	if list.Faction != "rebelalliance" {
		t.Errorf("unexpected faction: %s", list.Faction)
	}
	if len(list.Pilots) != 3 {
		t.Fatalf("expected 3 pilots, got %d", len(list.Pilots))
	}
	if list.Pilots[0].XWS != "biggsdarklighter" || list.Pilots[0].Ship != "t65xwing" {
		t.Errorf("first pilot not as expected: %+v", list.Pilots[0])
	}

	// The stored raw blob is the canonical form, not the provider response.
	var stored model.ParsedList
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("error parsing raw blob: %v", err)
	}
	if stored.Faction != list.Faction || len(stored.Pilots) != len(list.Pilots) {
		t.Errorf("raw blob doesn't round-trip: %+v", stored)
	}
}

func TestResolve_unparseableLink(t *testing.T) {
	fakeYASB := testutils.NewFakeYASBServer()
	defer fakeYASB.Close()
	client := NewForTest(fakeYASB.URL())

	if _, _, err := client.Resolve(context.Background(), "https://yasb.app/?garbage"); err == nil {
		t.Fatal("expected an error for an unparseable link")
	}
}
