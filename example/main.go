package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/srmorales/npi-sourcing/pkg/application/services/simulation"
	"github.com/srmorales/npi-sourcing/pkg/domain/entities"
	"github.com/srmorales/npi-sourcing/pkg/infrastructure/config"
)

func main() {
	env, err := simulation.NewEnvironment(config.Default(), 42, zap.NewNop())
	if err != nil {
		fmt.Printf("❌ Environment setup failed: %v\n", err)
		return
	}

	// Register an NPI project with its four launch milestones
	_, err = env.CreateProject("falcon",
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		fmt.Printf("❌ Project creation failed: %v\n", err)
		return
	}

	// A veteran supplier with a punctual history and a history-less one
	punctual := entities.DefaultProfile()
	punctual.Punctuality = entities.HighProfile
	punctual.Delivery = entities.HighProfile
	veteran, err := env.CreateSupplier("Borealis Tube & Fitting", punctual, false)
	if err != nil {
		fmt.Printf("❌ Supplier creation failed: %v\n", err)
		return
	}
	rookie, err := env.CreateSupplier("Fresh Metals", entities.DefaultProfile(), true)
	if err != nil {
		fmt.Printf("❌ Supplier creation failed: %v\n", err)
		return
	}

	fmt.Println("🏭 Running sourcing session for project falcon...")

	// Generate engineering changes and collect quotes from the pool
	ecns, err := env.GenECNs("falcon", 3)
	if err != nil {
		fmt.Printf("❌ ECN generation failed: %v\n", err)
		return
	}
	if err := env.QuoteAllECNsAllSuppliers("falcon"); err != nil {
		fmt.Printf("❌ Quoting round failed: %v\n", err)
		return
	}

	// Score each supplier against the first change
	fmt.Printf("\n⚖️  Evaluations for %s:\n", ecns[0].ID)
	for _, supplier := range []*entities.Supplier{veteran, rookie} {
		result, err := env.Evaluate(supplier.ID, ecns[0].ID, time.Time{})
		if err != nil {
			fmt.Printf("❌ Evaluation failed: %v\n", err)
			return
		}
		fmt.Printf("  %-24s score %.3f -> %s\n", result.SupplierName, result.Score, result.Action)
	}

	// Award the change to the veteran
	if err := env.ImplementECN(ecns[0].ID, veteran.ID); err != nil {
		fmt.Printf("❌ Award failed: %v\n", err)
		return
	}
	fmt.Printf("\n✅ %s awarded to %s\n", ecns[0].ID, veteran.Name)

	// Rate each supplier's spend priority across the project
	fmt.Println("\n🏷️  Spend-priority ratings:")
	for _, supplier := range env.Suppliers() {
		rating, err := env.ClassifySupplier(supplier.ID, "falcon")
		if err != nil {
			fmt.Printf("❌ Classification failed: %v\n", err)
			return
		}
		fmt.Printf("  %-24s score %.3f -> %s\n", rating.SupplierName, rating.Score, rating.Rating)
	}
}
