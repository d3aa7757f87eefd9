package world_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/orchestrators/world"
	"github.com/KirkDiggler/arena-api/internal/pkg/idgen"
	"github.com/KirkDiggler/arena-api/internal/repositories/entities"
)

func TestPropertyDamageClampsAtZero(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHealth := rapid.Int32Range(1, 10_000).Draw(rt, "max_health")
		amount := rapid.Int32Range(0, 20_000).Draw(rt, "amount")

		svc, err := world.NewOrchestrator(&world.Config{
			EntityRepo: entities.NewInMemory(),
			IDSequence: idgen.NewCounter(),
		})
		if err != nil {
			rt.Fatalf("failed to build orchestrator: %v", err)
		}

		ctx := context.Background()
		spawned, err := svc.Spawn(ctx, &world.SpawnInput{
			Kind:      arena.KindMonster,
			Name:      "target",
			MaxHealth: maxHealth,
		})
		if err != nil {
			rt.Fatalf("spawn failed: %v", err)
		}

		damaged, err := svc.Damage(ctx, &world.DamageInput{
			ID:     spawned.Entity.ID,
			Amount: amount,
		})
		if err != nil {
			rt.Fatalf("damage failed: %v", err)
		}

		want := maxHealth - amount
		if want < 0 {
			want = 0
		}
		if damaged.Entity.Health != want {
			rt.Fatalf("health = %d, want %d", damaged.Entity.Health, want)
		}
		if damaged.Killed != (want == 0) {
			rt.Fatalf("killed = %v with health %d", damaged.Killed, want)
		}
		if damaged.Entity.Alive == damaged.Killed {
			rt.Fatalf("alive = %v, killed = %v", damaged.Entity.Alive, damaged.Killed)
		}
	})
}
