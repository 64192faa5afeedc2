package collision

import (
	"testing"

	"github.com/automoto/hitbox-sandbox/geom"
)

const (
	tagPlayer  = "player"
	tagTrigger = "trigger"
)

func newSceneIndex(t *testing.T) (*Index, *Collider, *Collider, *Collider) {
	t.Helper()
	ix, err := NewIndex(1280, 736, 32)
	if err != nil {
		t.Fatal(err)
	}
	player, err := NewRect(geom.V(0, 0), 80, 30)
	if err != nil {
		t.Fatal(err)
	}
	player.SetExtraOffset(0, 25)
	player.Recenter(geom.V(100, 500))

	pond := mustCircle(t, 300, 300, 20)
	gate := mustRect(t, 400, 0, 200, 200)

	ix.Insert(player, tagPlayer)
	ix.Insert(pond, tagTrigger)
	ix.Insert(gate, tagTrigger)
	return ix, player, pond, gate
}

func TestIndexOverlappingFollowsSync(t *testing.T) {
	ix, player, pond, gate := newSceneIndex(t)

	hits, err := ix.Overlapping(player, tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Fatalf("expected no hits at start, got %d", len(hits))
	}

	player.Recenter(geom.V(300, 270))
	ix.Sync(player)
	hits, err = ix.Overlapping(player, tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != pond {
		t.Fatalf("expected pond, got %v", hits)
	}

	player.Recenter(geom.V(450, 150))
	ix.Sync(player)
	hits, err = ix.Overlapping(player, tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != gate {
		t.Fatalf("expected gate, got %v", hits)
	}
}

func TestIndexMatchesBruteForce(t *testing.T) {
	ix, player, pond, gate := newSceneIndex(t)
	zones := []*Collider{pond, gate}

	for x := 200.0; x <= 700; x += 7.5 {
		for y := -20.0; y <= 360; y += 7.5 {
			player.Recenter(geom.V(x, y))
			ix.Sync(player)
			hits, err := ix.Overlapping(player, tagTrigger)
			if err != nil {
				t.Fatal(err)
			}
			var want int
			for _, z := range zones {
				ok, err := player.Intersects(z)
				if err != nil {
					t.Fatal(err)
				}
				if ok {
					want++
				}
			}
			if len(hits) != want {
				t.Fatalf("at (%v,%v) index found %d, brute force %d", x, y, len(hits), want)
			}
		}
	}
}

func TestIndexTagsFilter(t *testing.T) {
	ix, player, pond, _ := newSceneIndex(t)
	player.Recenter(geom.V(300, 270))
	ix.Sync(player)

	hits, err := ix.Overlapping(pond, tagPlayer)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != player {
		t.Fatalf("expected player from pond query, got %v", hits)
	}
}

func TestIndexAt(t *testing.T) {
	ix, _, pond, gate := newSceneIndex(t)

	tests := []struct {
		name string
		p    geom.Vec2
		want *Collider
	}{
		{"pond center", geom.V(300, 300), pond},
		{"gate interior", geom.V(500, 100), gate},
		{"gate right edge excluded", geom.V(600, 100), nil},
		{"empty space", geom.V(900, 600), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := ix.At(tt.p, tagTrigger)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == nil {
				if len(hits) != 0 {
					t.Errorf("expected no hits, got %d", len(hits))
				}
				return
			}
			if len(hits) != 1 || hits[0] != tt.want {
				t.Errorf("hits = %v", hits)
			}
		})
	}
}

func TestIndexOutsideSpaceFallsBack(t *testing.T) {
	ix, err := NewIndex(100, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	a := mustCircle(t, -50, -50, 10)
	b := mustCircle(t, -45, -50, 10)
	ix.Insert(a, tagTrigger)
	ix.Insert(b, tagTrigger)

	hits, err := ix.Overlapping(a, tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0] != b {
		t.Fatalf("expected b, got %v", hits)
	}

	got, err := ix.At(geom.V(-45, -50), tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("At outside space found %d", len(got))
	}
}

func TestIndexRemove(t *testing.T) {
	ix, player, pond, _ := newSceneIndex(t)
	player.Recenter(geom.V(300, 270))
	ix.Sync(player)
	ix.Remove(pond)

	if ix.Len() != 2 {
		t.Fatalf("Len = %d", ix.Len())
	}
	hits, err := ix.Overlapping(player, tagTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("removed collider still reported")
	}
}

func TestIndexBoxesCoverShapes(t *testing.T) {
	ix, player, _, _ := newSceneIndex(t)
	player.Recenter(geom.V(300.4, 270.7))
	ix.Sync(player)

	boxes := ix.Boxes()
	if len(boxes) != 3 {
		t.Fatalf("boxes = %d", len(boxes))
	}
	b, r := boxes[0], player.Bounds()
	if b.Left() >= r.Left() || b.Top() >= r.Top() || b.Right() <= r.Right() || b.Bottom() <= r.Bottom() {
		t.Errorf("box %+v does not strictly cover %+v", b, r)
	}
}

func TestIndexCoversPartialCells(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cell          int
		at            geom.Vec2
	}{
		{"bottom strip", 1280, 736, 64, geom.V(500, 720)},
		{"right strip", 1000, 640, 64, geom.V(980, 300)},
		{"corner", 1000, 700, 48, geom.V(980, 680)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, err := NewIndex(tt.width, tt.height, tt.cell)
			if err != nil {
				t.Fatal(err)
			}
			mover, err := NewRect(tt.at, 20, 20)
			if err != nil {
				t.Fatal(err)
			}
			zone, err := NewRect(tt.at.Add(geom.V(5, 0)), 20, 20)
			if err != nil {
				t.Fatal(err)
			}
			ix.Insert(mover, tagPlayer)
			ix.Insert(zone, tagTrigger)

			if ok, _ := mover.Intersects(zone); !ok {
				t.Fatal("shapes should overlap")
			}
			hits, err := ix.Overlapping(mover, tagTrigger)
			if err != nil {
				t.Fatal(err)
			}
			if len(hits) != 1 || hits[0] != zone {
				t.Errorf("Overlapping = %v, want the zone", hits)
			}

			picked, err := ix.At(tt.at.Add(geom.V(5, 0)), tagTrigger)
			if err != nil {
				t.Fatal(err)
			}
			if len(picked) != 1 || picked[0] != zone {
				t.Errorf("At = %v, want the zone", picked)
			}
		})
	}
}
