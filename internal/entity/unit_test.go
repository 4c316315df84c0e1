package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestAttackReducesIntegrity(t *testing.T) {
	attacker := Unit{Damage: 4, RemainingAttacks: 1}
	defender := Unit{Integrity: 5}

	outcome, err := attacker.Attack(defender)
	if err != nil {
		t.Fatalf("Attack() error: %v", err)
	}
	if outcome.Defender.Integrity != 1 {
		t.Errorf("Defender.Integrity = %d, want 1", outcome.Defender.Integrity)
	}
}

func TestAttackTakesArmorIntoAccount(t *testing.T) {
	attacker := Unit{Damage: 4, RemainingAttacks: 1}
	defender := Unit{Integrity: 5, Armor: 1}

	outcome, err := attacker.Attack(defender)
	if err != nil {
		t.Fatalf("Attack() error: %v", err)
	}
	if outcome.ActualDamage != 3 {
		t.Errorf("ActualDamage = %d, want 3", outcome.ActualDamage)
	}
	if outcome.Defender.Integrity != 2 {
		t.Errorf("Defender.Integrity = %d, want 2", outcome.Defender.Integrity)
	}
}

func TestAttackSpendsBudgets(t *testing.T) {
	attacker := Unit{Damage: 4, Mobility: 5, RemainingRange: 3, RemainingAttacks: 1}
	defender := Unit{Integrity: 5}

	outcome, err := attacker.Attack(defender)
	if err != nil {
		t.Fatalf("Attack() error: %v", err)
	}
	if outcome.Attacker.RemainingAttacks != 0 {
		t.Errorf("Attacker.RemainingAttacks = %d, want 0", outcome.Attacker.RemainingAttacks)
	}
	if outcome.Attacker.RemainingRange != 0 {
		t.Errorf("Attacker.RemainingRange = %d, want 0", outcome.Attacker.RemainingRange)
	}
	if attacker.RemainingAttacks != 1 || defender.Integrity != 5 {
		t.Error("Attack() must not modify its receiver or argument")
	}
}

func TestAttackNotClampedAgainstHeavyArmor(t *testing.T) {
	attacker := Unit{Damage: 2, RemainingAttacks: 1}
	defender := Unit{Integrity: 5, Armor: 4}

	outcome, err := attacker.Attack(defender)
	if err != nil {
		t.Fatalf("Attack() error: %v", err)
	}
	if outcome.ActualDamage != -2 {
		t.Errorf("ActualDamage = %d, want -2", outcome.ActualDamage)
	}
	if outcome.Defender.Integrity != 7 {
		t.Errorf("Defender.Integrity = %d, want 7", outcome.Defender.Integrity)
	}
}

func TestAttackWithoutAttacksLeft(t *testing.T) {
	for _, remaining := range []int{0, -1} {
		attacker := Unit{Damage: 10, RemainingAttacks: remaining}
		_, err := attacker.Attack(Unit{Integrity: 5})
		if !errors.Is(err, ErrNoAttacksLeft) {
			t.Errorf("RemainingAttacks=%d: error = %v, want ErrNoAttacksLeft", remaining, err)
		}
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name          string
		remaining     int
		distance      int
		wantRemaining int
		wantOK        bool
	}{
		{"within range", 5, 4, 1, true},
		{"exact range", 5, 5, 0, true},
		{"beyond range", 4, 5, 0, false},
		{"zero distance", 5, 0, 0, false},
		{"negative distance", 5, -1, 0, false},
		{"no range left", 0, 1, 0, false},
	}

	for _, tt := range tests {
		u := Unit{Mobility: 5, RemainingRange: tt.remaining}
		got, ok := u.CanMove(tt.distance)
		if ok != tt.wantOK || got != tt.wantRemaining {
			t.Errorf("%s: CanMove(%d) = (%d, %v), want (%d, %v)",
				tt.name, tt.distance, got, ok, tt.wantRemaining, tt.wantOK)
		}
	}
}

func TestCanAttack(t *testing.T) {
	u := Unit{MinAttackRange: 2, MaxAttackRange: 4}
	tests := []struct {
		distance int
		want     bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, true},
		{5, false},
	}
	for _, tt := range tests {
		if got := u.CanAttack(tt.distance); got != tt.want {
			t.Errorf("CanAttack(%d) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestResetTurn(t *testing.T) {
	u := Unit{Integrity: 7, Damage: 3, Mobility: 4, RemainingRange: 0, RemainingAttacks: 0}
	reset := u.ResetTurn()

	if reset.RemainingAttacks != 1 {
		t.Errorf("RemainingAttacks = %d, want 1", reset.RemainingAttacks)
	}
	if reset.RemainingRange != 4 {
		t.Errorf("RemainingRange = %d, want 4", reset.RemainingRange)
	}
	if reset.Integrity != 7 || reset.Damage != 3 {
		t.Error("ResetTurn() changed combat statistics")
	}
}

func TestNewUnit(t *testing.T) {
	u := NewUnit(20, 5, 3, 5, 1, 2)
	want := Unit{
		Integrity: 20, Damage: 5, Armor: 3, Mobility: 5, RemainingRange: 5,
		MinAttackRange: 1, MaxAttackRange: 2, RemainingAttacks: 1,
	}
	if u != want {
		t.Errorf("NewUnit() = %+v, want %+v", u, want)
	}
}

func TestDestroyed(t *testing.T) {
	if (Unit{Integrity: 1}).Destroyed() {
		t.Error("unit with integrity 1 should not be destroyed")
	}
	if !(Unit{Integrity: 0}).Destroyed() {
		t.Error("unit with integrity 0 should be destroyed")
	}
}

func TestPlayerHex(t *testing.T) {
	p := NewPlayer(0, "Player 1", tcell.NewRGBColor(0, 0, 255))
	if !strings.EqualFold(p.Hex(), "#0000ff") {
		t.Errorf("Hex() = %q, want #0000ff", p.Hex())
	}
	if got := NewPlayer(1, "Nobody", tcell.ColorDefault).Hex(); got != "" {
		t.Errorf("Hex() for default colour = %q, want empty", got)
	}
}
