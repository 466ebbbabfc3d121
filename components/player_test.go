package components

import (
	"math"
	"testing"

	"github.com/haoranliu666/Hell-Survivor/constants"
)

func TestGainExpLevelingLoop(t *testing.T) {
	tests := []struct {
		name        string
		amount      int
		wantLevels  int
		wantResidue int
	}{
		{"Below threshold", 40, 0, 40},
		{"Exact threshold", 100, 1, 0},
		{"Three levels at once", 350, 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0)
			baseSpeed := p.SpeedMultiplier
			baseMax := p.MaxHealth

			levels := p.GainExp(tt.amount)
			if levels != tt.wantLevels {
				t.Errorf("Expected %d levels, got %d", tt.wantLevels, levels)
			}
			if p.Exp != tt.wantResidue {
				t.Errorf("Expected residual exp %d, got %d", tt.wantResidue, p.Exp)
			}
			if p.Level != 1+tt.wantLevels {
				t.Errorf("Expected level %d, got %d", 1+tt.wantLevels, p.Level)
			}

			wantSpeed := baseSpeed + float64(tt.wantLevels)*constants.LevelSpeedBonus
			if math.Abs(p.SpeedMultiplier-wantSpeed) > 1e-9 {
				t.Errorf("Expected speed %f, got %f", wantSpeed, p.SpeedMultiplier)
			}
			if p.MaxHealth != baseMax+tt.wantLevels*constants.LevelHealthBonus {
				t.Errorf("Expected max health %d, got %d", baseMax+tt.wantLevels*constants.LevelHealthBonus, p.MaxHealth)
			}
		})
	}
}

func TestTakeDamageImmunity(t *testing.T) {
	p := NewPlayer(0, 0)

	if !p.TakeDamage(10) {
		t.Fatal("First hit should land")
	}
	if p.Health != constants.PlayerMaxHealth-10 {
		t.Errorf("Expected health %d, got %d", constants.PlayerMaxHealth-10, p.Health)
	}
	if p.InvincibleTimer != constants.InvincibilityTicks {
		t.Errorf("Expected invincibility %d, got %d", constants.InvincibilityTicks, p.InvincibleTimer)
	}

	// Invincibility suppresses the second hit
	if p.TakeDamage(10) {
		t.Error("Hit during invincibility should not land")
	}

	// Dodging suppresses damage too
	p.InvincibleTimer = 0
	p.IsDodging = true
	if p.TakeDamage(10) {
		t.Error("Hit during dodge should not land")
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Health = 3
	p.TakeDamage(50)
	if p.Health != 0 {
		t.Errorf("Expected health 0, got %d", p.Health)
	}
}

func TestSwordDamageScaling(t *testing.T) {
	tests := []struct {
		level    int
		expected int
	}{
		{0, 2}, {1, 3}, {2, 4}, {3, 5}, {4, 7}, {5, 9}, {6, 11},
	}

	p := NewPlayer(0, 0)
	for _, tt := range tests {
		p.SwordLevel = tt.level
		if got := p.SwordDamage(); got != tt.expected {
			t.Errorf("SwordDamage at level %d = %d, want %d", tt.level, got, tt.expected)
		}
	}
}

func TestAttackRectFacing(t *testing.T) {
	p := NewPlayer(100, 100)
	p.Weapon = WeaponSword
	if _, ok := p.AttackRect(); ok {
		t.Fatal("No attack rect while not attacking")
	}

	p.StartAttack()
	cx, cy := p.Center()

	p.Facing = FacingRight
	r, ok := p.AttackRect()
	if !ok {
		t.Fatal("Expected attack rect while attacking")
	}
	if r.X != cx || r.W != constants.PlayerAttackRange {
		t.Errorf("Right-facing rect = %+v", r)
	}

	p.Facing = FacingUp
	r, _ = p.AttackRect()
	if r.Y != cy-constants.PlayerAttackRange || r.H != constants.PlayerAttackRange {
		t.Errorf("Up-facing rect = %+v", r)
	}

	// Level 2 sword scales reach by 1.5
	p.SwordLevel = 2
	r, _ = p.AttackRect()
	if r.H != constants.PlayerAttackRange*1.5 {
		t.Errorf("Expected scaled reach %f, got %f", constants.PlayerAttackRange*1.5, r.H)
	}
}

func TestAttackDodgeExclusive(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Weapon = WeaponSword

	if !p.StartAttack() {
		t.Fatal("Attack should start")
	}
	if p.StartDodge() {
		t.Error("Dodge must not start during attack")
	}

	p.IsAttacking = false
	p.AttackTimer = 0
	if !p.StartDodge() {
		t.Fatal("Dodge should start")
	}
	if p.StartAttack() {
		t.Error("Attack must not start during dodge")
	}
}

func TestArrowDirections(t *testing.T) {
	p := NewPlayer(0, 0)
	p.Weapon = WeaponBow
	p.Facing = FacingRight

	dirs := p.ArrowDirections()
	if len(dirs) != 1 {
		t.Fatalf("Expected 1 arrow, got %d", len(dirs))
	}
	if dirs[0][0] != 1 || dirs[0][1] != 0 {
		t.Errorf("Expected (1, 0), got %v", dirs[0])
	}

	p.ExtraArrows = 2
	dirs = p.ArrowDirections()
	if len(dirs) != 5 {
		t.Fatalf("Expected 5 arrows, got %d", len(dirs))
	}
	for i, d := range dirs {
		if mag := math.Hypot(d[0], d[1]); math.Abs(mag-1) > 1e-9 {
			t.Errorf("Arrow %d not normalized: %f", i, mag)
		}
	}
}

func TestApplyCrateUpgrade(t *testing.T) {
	p := NewPlayer(0, 0)

	p.Weapon = WeaponSword
	p.ApplyCrateUpgrade()
	if p.SwordLevel != 1 {
		t.Errorf("Expected sword level 1, got %d", p.SwordLevel)
	}

	p.Weapon = WeaponBow
	p.ApplyCrateUpgrade()
	if p.ExtraArrows != 1 {
		t.Errorf("Expected 1 extra arrow, got %d", p.ExtraArrows)
	}

	p.Weapon = WeaponBomb
	p.ApplyCrateUpgrade()
	if p.BombLevel != 1 {
		t.Errorf("Expected bomb level 1, got %d", p.BombLevel)
	}
}

func TestBombScaling(t *testing.T) {
	p := NewPlayer(0, 0)
	if p.BombDamage() != constants.BombBaseDamage {
		t.Errorf("Expected base damage, got %d", p.BombDamage())
	}
	p.BombLevel = 2
	if p.BombDamage() != constants.BombBaseDamage+4 {
		t.Errorf("Expected damage %d, got %d", constants.BombBaseDamage+4, p.BombDamage())
	}
	if p.BombRange() != constants.BombBaseRange+30 {
		t.Errorf("Expected range %f, got %f", float64(constants.BombBaseRange+30), p.BombRange())
	}
}
