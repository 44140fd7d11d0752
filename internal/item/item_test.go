package item

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Iron-Ham/sixgun/internal/chronicle"
	"github.com/Iron-Ham/sixgun/internal/errors"
	"github.com/Iron-Ham/sixgun/internal/locale"
	"github.com/Iron-Ham/sixgun/internal/modifier"
	"github.com/Iron-Ham/sixgun/internal/revolver"
)

type fixture struct {
	sys   *System
	mods  *modifier.Engine
	cyl   *revolver.Cylinder
	chron *chronicle.Chronicle
}

func newFixture(t *testing.T, chambers int, bullets []int, position int) *fixture {
	t.Helper()
	chron := chronicle.New("no history yet")
	cyl, err := revolver.NewLoaded(rand.New(rand.NewSource(1)), chron, locale.Default(), chambers, bullets, position)
	if err != nil {
		t.Fatalf("NewLoaded() error = %v", err)
	}
	mods := modifier.New()
	return &fixture{
		sys:   NewSystem(cyl, mods, chron, locale.Default()),
		mods:  mods,
		cyl:   cyl,
		chron: chron,
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Inspect", KindInspect, true},
		{"inspect", KindInspect, true},
		{"  PUSH  ", KindPush, true},
		{"ExtraBullet", KindExtraBullet, true},
		{"extra bullet", KindExtraBullet, true},
		{"bullet", KindExtraBullet, true},
		{"Reverse", KindReverse, true},
		{"Contract", KindContract, true},
		{"grenade", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseKind(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestPerPlayerCount(t *testing.T) {
	cases := []struct{ chambers, want int }{
		{2, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4},
	}
	for _, tc := range cases {
		if got := PerPlayerCount(tc.chambers); got != tc.want {
			t.Errorf("PerPlayerCount(%d) = %d, want %d", tc.chambers, got, tc.want)
		}
	}
}

func TestDeal(t *testing.T) {
	hands := Deal(rand.New(rand.NewSource(7)), 6, 2)

	if len(hands) != 2 {
		t.Fatalf("Deal() hands = %d, want 2", len(hands))
	}
	for i, hand := range hands {
		if got := hand.Len(); got != PerPlayerCount(6) {
			t.Errorf("hand %d: Len() = %d, want %d", i, got, PerPlayerCount(6))
		}
	}
}

func TestDealLargeCylinder(t *testing.T) {
	// Big cylinders need hands larger than one pass over the kinds; the
	// pool must grow to cover every player.
	for _, chambers := range []int{31, 60, 100} {
		hands := Deal(rand.New(rand.NewSource(7)), chambers, 2)

		if len(hands) != 2 {
			t.Fatalf("chambers=%d: Deal() hands = %d, want 2", chambers, len(hands))
		}
		for i, hand := range hands {
			if got := hand.Len(); got != PerPlayerCount(chambers) {
				t.Errorf("chambers=%d hand %d: Len() = %d, want %d",
					chambers, i, got, PerPlayerCount(chambers))
			}
		}
	}
}

func TestInventory(t *testing.T) {
	inv := NewInventory(KindPush, KindPush, KindInspect)

	if !inv.Has(KindPush) {
		t.Error("Has(Push) = false")
	}
	if !inv.Remove(KindPush) {
		t.Error("Remove(Push) = false")
	}
	// Multiset: one unit removed, one remains.
	if !inv.Has(KindPush) {
		t.Error("Has(Push) after one removal = false, want true")
	}
	if inv.Remove(KindContract) {
		t.Error("Remove(Contract) = true for item never held")
	}
	if got := inv.String(); got != "Push, Inspect" {
		t.Errorf("String() = %q, want %q", got, "Push, Inspect")
	}
	if got := NewInventory().String(); got != "none" {
		t.Errorf("empty String() = %q, want %q", got, "none")
	}
}

func TestUseUnknownItem(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindPush)

	_, err := f.sys.Use("Bill", inv, "grenade", "")
	if !errors.Is(err, errors.ErrUnknownItem) {
		t.Fatalf("Use(grenade) error = %v, want ErrUnknownItem", err)
	}
	if got := inv.Len(); got != 1 {
		t.Errorf("inventory Len() = %d, want 1 (nothing consumed)", got)
	}
}

func TestUseItemNotHeld(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindPush)

	_, err := f.sys.Use("Bill", inv, "Contract", "")
	if !errors.Is(err, errors.ErrItemNotHeld) {
		t.Fatalf("Use(Contract) error = %v, want ErrItemNotHeld", err)
	}
	if f.mods.ContractActive() {
		t.Error("ContractActive() = true after rejected activation")
	}
}

func TestInspectMalformedParam(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindInspect)

	for _, param := range []string{"", "three", "2.5"} {
		_, err := f.sys.Use("Bill", inv, "Inspect", param)
		if !errors.Is(err, errors.ErrItemParameter) {
			t.Errorf("Use(Inspect, %q) error = %v, want ErrItemParameter", param, err)
		}
	}
	if got := inv.Len(); got != 1 {
		t.Errorf("inventory Len() = %d, want 1 (malformed param must not consume)", got)
	}
}

func TestInspectOutOfRange(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindInspect)

	_, err := f.sys.Use("Bill", inv, "Inspect", "7")
	if !errors.Is(err, errors.ErrPositionOutOfRange) {
		t.Fatalf("Use(Inspect, 7) error = %v, want ErrPositionOutOfRange", err)
	}
	if got := inv.Len(); got != 1 {
		t.Errorf("inventory Len() = %d, want 1 (invalid position must not consume)", got)
	}
}

func TestInspectSuccess(t *testing.T) {
	f := newFixture(t, 6, []int{0, 2}, 0)
	inv := NewInventory(KindInspect)
	partBefore := f.chron.ParticipantLen()

	res, err := f.sys.Use("Bill", inv, "Inspect", "3")
	if err != nil {
		t.Fatalf("Use(Inspect, 3) error = %v", err)
	}
	if !res.Consumed {
		t.Error("Result.Consumed = false")
	}
	if !strings.Contains(res.Message, "loaded") {
		t.Errorf("Result.Message = %q, want it to report a loaded chamber", res.Message)
	}
	if inv.Has(KindInspect) {
		t.Error("item still held after successful use")
	}

	// Participants only learn that an item was used.
	part := f.chron.Status(true)
	if strings.Contains(part, "Inspect") || strings.Contains(part, "chamber 3 is") {
		t.Errorf("participant log leaks inspection details: %q", part)
	}
	if got := f.chron.ParticipantLen(); got != partBefore+1 {
		t.Errorf("ParticipantLen() = %d, want %d", got, partBefore+1)
	}
	if spec := f.chron.Status(false); !strings.Contains(spec, "Inspect") {
		t.Errorf("spectator log missing exact item name: %q", spec)
	}
}

func TestExtraBullet(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindExtraBullet)

	res, err := f.sys.Use("Bill", inv, "ExtraBullet", "")
	if err != nil {
		t.Fatalf("Use(ExtraBullet) error = %v", err)
	}
	if !res.Consumed {
		t.Error("Result.Consumed = false")
	}
	if got := f.cyl.BulletCount(); got != 2 {
		t.Errorf("BulletCount() = %d, want 2", got)
	}

	// The exact chamber is spectator-only.
	if part := f.chron.Status(true); strings.Contains(part, "slipped into") || strings.Contains(part, "ExtraBullet") {
		t.Errorf("participant log leaks bullet placement: %q", part)
	}
}

func TestExtraBulletChambersFull(t *testing.T) {
	f := newFixture(t, 2, []int{0}, 0)
	inv := NewInventory(KindExtraBullet, KindExtraBullet)

	if _, err := f.sys.Use("Bill", inv, "ExtraBullet", ""); err != nil {
		t.Fatalf("first Use(ExtraBullet) error = %v", err)
	}

	res, err := f.sys.Use("Bill", inv, "ExtraBullet", "")
	if err != nil {
		t.Fatalf("second Use(ExtraBullet) error = %v", err)
	}
	if !strings.Contains(res.Message, "every chamber") {
		t.Errorf("Result.Message = %q, want chambers-full report", res.Message)
	}
	if got := f.cyl.BulletCount(); got != 2 {
		t.Errorf("BulletCount() = %d, want 2 (unchanged)", got)
	}
}

func TestReverseItem(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindReverse)

	if _, err := f.sys.Use("Bill", inv, "Reverse", ""); err != nil {
		t.Fatalf("Use(Reverse) error = %v", err)
	}
	if !f.mods.ReverseActive() {
		t.Error("ReverseActive() = false after use")
	}
	if got := f.mods.ReverseActivator(); got != "Bill" {
		t.Errorf("ReverseActivator() = %q, want %q", got, "Bill")
	}
	// Modifier activations are announced openly to both logs.
	if part := f.chron.Status(true); !strings.Contains(part, "Reverse") {
		t.Errorf("participant log missing reverse announcement: %q", part)
	}
}

func TestContractItem(t *testing.T) {
	f := newFixture(t, 6, []int{0}, 0)
	inv := NewInventory(KindContract)

	if _, err := f.sys.Use("Bill", inv, "Contract", ""); err != nil {
		t.Fatalf("Use(Contract) error = %v", err)
	}
	if !f.mods.ContractActive() {
		t.Error("ContractActive() = false after use")
	}
	if got := f.mods.ContractShotsLeft(); got != modifier.ContractShots {
		t.Errorf("ContractShotsLeft() = %d, want %d", got, modifier.ContractShots)
	}
}

func TestPushItem(t *testing.T) {
	f := newFixture(t, 6, []int{3}, 0)
	inv := NewInventory(KindPush)

	res, err := f.sys.Use("Bill", inv, "Push", "")
	if err != nil {
		t.Fatalf("Use(Push) error = %v", err)
	}
	if got := f.cyl.Position(); got != 1 {
		t.Errorf("Position() = %d, want 1", got)
	}
	if !strings.Contains(res.Message, "chamber 2") {
		t.Errorf("Result.Message = %q, want new trigger chamber", res.Message)
	}
}
